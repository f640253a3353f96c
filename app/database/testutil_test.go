package database

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/ProfStephanos/school-finance-management-system/app/models"
)

// newTestDB opens an in-memory SQLite store with the full ledger schema.
// The connection pool is capped at one so every statement sees the same
// in-memory database.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := InitializeDatabase(db); err != nil {
		t.Fatalf("initialize schema: %v", err)
	}
	return db
}

func seedStudent(t *testing.T, db *sql.DB, nemis, grade string) *models.Student {
	t.Helper()
	s := &models.Student{
		StudentName:    "Student " + nemis,
		NemisNumber:    nemis,
		Grade:          grade,
		ParentGuardian: "Guardian " + nemis,
		Contact:        "07" + nemis,
	}
	if err := CreateStudent(db, s); err != nil {
		t.Fatalf("seed student %s: %v", nemis, err)
	}
	return s
}

func seedAccount(t *testing.T, db *sql.DB, name string, opening int64) *models.Account {
	t.Helper()
	a := &models.Account{
		AccountName:    name,
		BankName:       "Equity Bank",
		AccountNumber:  fmt.Sprintf("01-%s", name),
		OpeningBalance: decimal.NewFromInt(opening),
	}
	if err := CreateAccount(db, a); err != nil {
		t.Fatalf("seed account %s: %v", name, err)
	}
	return a
}

func seedReceivable(t *testing.T, db *sql.DB, accountName string, amount int64, nemis string, due *time.Time) *models.Receivable {
	t.Helper()
	r := &models.Receivable{
		ReceivableType: "Tuition Fee",
		Description:    "Test receivable",
		Amount:         decimal.NewFromInt(amount),
		AccountName:    accountName,
		DueDate:        due,
	}
	if nemis != "" {
		r.NemisNumber = &nemis
	}
	if err := CreateReceivable(db, r); err != nil {
		t.Fatalf("seed receivable: %v", err)
	}
	return r
}

func seedPayable(t *testing.T, db *sql.DB, accountName string, amount int64, due *time.Time) *models.Payable {
	t.Helper()
	p := &models.Payable{
		PayableType: "Utilities",
		Description: "Test payable",
		Amount:      decimal.NewFromInt(amount),
		AccountName: accountName,
		Vendor:      "Umeme Ltd",
		DueDate:     due,
	}
	if err := CreatePayable(db, p); err != nil {
		t.Fatalf("seed payable: %v", err)
	}
	return p
}

func seedFeeStructure(t *testing.T, db *sql.DB, year, grade string, term int, feeType string, amount int64) *models.FeeStructureItem {
	t.Helper()
	item := &models.FeeStructureItem{
		Year:        year,
		Grade:       grade,
		Term:        term,
		FeeType:     feeType,
		Amount:      decimal.NewFromInt(amount),
		Description: fmt.Sprintf("%s for %s", feeType, grade),
	}
	if err := UpsertFeeStructureItem(db, item); err != nil {
		t.Fatalf("seed fee structure: %v", err)
	}
	return item
}

func accountBalance(t *testing.T, db *sql.DB, name string) decimal.Decimal {
	t.Helper()
	a, err := GetAccountByName(db, name)
	if err != nil {
		t.Fatalf("load account %s: %v", name, err)
	}
	return a.CurrentBalance
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func requireBalance(t *testing.T, db *sql.DB, account string, want int64) {
	t.Helper()
	got := accountBalance(t, db, account)
	if !got.Equal(decimal.NewFromInt(want)) {
		t.Fatalf("balance of %s = %s, want %d", account, got, want)
	}
}

// breakBalanceUpdates installs a trigger that aborts any write to
// current_balance, to verify that a failed balance update rolls the whole
// unit of work back.
func breakBalanceUpdates(t *testing.T, db *sql.DB) {
	t.Helper()
	_, err := db.Exec(`CREATE TRIGGER break_balance_updates
		BEFORE UPDATE OF current_balance ON accounts
		BEGIN SELECT RAISE(ABORT, 'balance update disabled'); END`)
	if err != nil {
		t.Fatalf("install trigger: %v", err)
	}
}

func daysFromNow(n int) *time.Time {
	d := time.Now().AddDate(0, 0, n)
	return &d
}
