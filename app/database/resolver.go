package database

import (
	"database/sql"
	"fmt"
)

// Querier is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Write paths resolve natural keys through the transaction they are about to
// commit in, so a resolved id is guaranteed to exist when the reference is
// written.
type Querier interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// ResolveStudent maps a NEMIS number to the student's internal id.
func ResolveStudent(q Querier, nemisNumber string) (string, error) {
	var id string
	err := q.QueryRow(`SELECT id FROM students WHERE nemis_number = $1`, nemisNumber).Scan(&id)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("%w: student with NEMIS number %q", ErrReferenceNotFound, nemisNumber)
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve student: %w", err)
	}
	return id, nil
}

// ResolveAccount maps an account name to the account's internal id.
func ResolveAccount(q Querier, accountName string) (string, error) {
	var id string
	err := q.QueryRow(`SELECT id FROM accounts WHERE account_name = $1`, accountName).Scan(&id)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("%w: account %q", ErrReferenceNotFound, accountName)
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve account: %w", err)
	}
	return id, nil
}
