package database

import (
	"database/sql"
	"fmt"
)

// schemaStatements creates the six ledger tables. The DDL is deliberately
// portable between PostgreSQL and SQLite: ids, UUIDs and timestamps are
// generated in Go rather than by store defaults, and constraints stick to
// CHECK/UNIQUE/PRIMARY KEY.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id TEXT PRIMARY KEY,
		student_name TEXT NOT NULL,
		nemis_number TEXT UNIQUE NOT NULL,
		grade TEXT NOT NULL,
		parent_guardian TEXT NOT NULL,
		contact TEXT NOT NULL,
		date_enrolled TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS accounts (
		id TEXT PRIMARY KEY,
		account_name TEXT UNIQUE NOT NULL,
		bank_name TEXT NOT NULL,
		account_number TEXT NOT NULL,
		opening_balance NUMERIC NOT NULL DEFAULT 0,
		current_balance NUMERIC NOT NULL DEFAULT 0,
		date_created TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS fees_transactions (
		id TEXT PRIMARY KEY,
		student_id TEXT NOT NULL REFERENCES students(id),
		nemis_number TEXT NOT NULL,
		amount NUMERIC NOT NULL CHECK (amount > 0),
		term INTEGER NOT NULL CHECK (term IN (1, 2, 3)),
		date TIMESTAMP NOT NULL,
		account_id TEXT NOT NULL REFERENCES accounts(id),
		school_account TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS receivables (
		id TEXT PRIMARY KEY,
		receivable_type TEXT NOT NULL,
		description TEXT NOT NULL,
		amount NUMERIC NOT NULL CHECK (amount > 0),
		due_date DATE,
		account_id TEXT NOT NULL REFERENCES accounts(id),
		account_name TEXT NOT NULL,
		student_id TEXT REFERENCES students(id),
		nemis_number TEXT,
		status TEXT NOT NULL DEFAULT 'Pending' CHECK (status IN ('Pending', 'Received')),
		date_created TIMESTAMP NOT NULL,
		date_received TIMESTAMP,
		last_reminder_date TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS payables (
		id TEXT PRIMARY KEY,
		payable_type TEXT NOT NULL,
		description TEXT NOT NULL,
		amount NUMERIC NOT NULL CHECK (amount > 0),
		due_date DATE,
		account_id TEXT NOT NULL REFERENCES accounts(id),
		account_name TEXT NOT NULL,
		vendor TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Pending' CHECK (status IN ('Pending', 'Paid')),
		date_created TIMESTAMP NOT NULL,
		date_paid TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS fee_structure (
		year TEXT NOT NULL,
		grade TEXT NOT NULL,
		term INTEGER NOT NULL CHECK (term IN (1, 2, 3)),
		fee_type TEXT NOT NULL,
		amount NUMERIC NOT NULL,
		description TEXT,
		PRIMARY KEY (year, grade, term, fee_type)
	)`,
}

var indexStatements = []string{
	`CREATE INDEX IF NOT EXISTS idx_fees_transactions_student_id ON fees_transactions(student_id)`,
	`CREATE INDEX IF NOT EXISTS idx_fees_transactions_account_id ON fees_transactions(account_id)`,
	`CREATE INDEX IF NOT EXISTS idx_receivables_status ON receivables(status)`,
	`CREATE INDEX IF NOT EXISTS idx_receivables_due_date ON receivables(due_date)`,
	`CREATE INDEX IF NOT EXISTS idx_payables_status ON payables(status)`,
}

// InitializeDatabase creates all ledger tables and indexes if they do not
// exist yet.
func InitializeDatabase(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	for _, stmt := range indexStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
