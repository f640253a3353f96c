package database

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ProfStephanos/school-finance-management-system/app/models"
)

func payment(nemis string, amount int64, term int, account string) *models.FeeTransaction {
	return &models.FeeTransaction{
		NemisNumber:   nemis,
		Amount:        decimal.NewFromInt(amount),
		Term:          term,
		SchoolAccount: account,
	}
}

// Payment against a NEMIS number that was never enrolled: the whole
// operation fails and nothing is written.
func TestRecordFeePaymentUnknownStudent(t *testing.T) {
	db := newTestDB(t)
	seedAccount(t, db, "Main", 0)

	err := RecordFeePayment(db, payment("E1", 500, 1, "Main"))
	if !errors.Is(err, ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound, got %v", err)
	}
	requireBalance(t, db, "Main", 0)
	if n := countRows(t, db, "fees_transactions"); n != 0 {
		t.Fatalf("expected no transactions, got %d", n)
	}
}

func TestRecordFeePaymentUnknownAccount(t *testing.T) {
	db := newTestDB(t)
	seedStudent(t, db, "E1", "Grade 1")

	err := RecordFeePayment(db, payment("E1", 500, 1, "Main"))
	if !errors.Is(err, ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound, got %v", err)
	}
	if n := countRows(t, db, "fees_transactions"); n != 0 {
		t.Fatalf("expected no transactions, got %d", n)
	}
}

// Happy path: exactly one immutable row, balance credited once.
func TestRecordFeePayment(t *testing.T) {
	db := newTestDB(t)
	seedStudent(t, db, "E1", "Grade 1")
	seedAccount(t, db, "Main", 0)

	p := payment("E1", 500, 2, "Main")
	if err := RecordFeePayment(db, p); err != nil {
		t.Fatalf("record payment: %v", err)
	}

	requireBalance(t, db, "Main", 500)
	if n := countRows(t, db, "fees_transactions"); n != 1 {
		t.Fatalf("expected exactly one transaction, got %d", n)
	}
	if p.StudentID == "" || p.AccountID == "" {
		t.Fatal("expected resolved internal ids on the payment")
	}

	history, err := GetTransactions(db)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].SchoolAccount != "Main" || history[0].Term != 2 {
		t.Fatalf("unexpected history: %+v", history)
	}
}

func TestRecordFeePaymentValidation(t *testing.T) {
	db := newTestDB(t)
	seedStudent(t, db, "E1", "Grade 1")
	seedAccount(t, db, "Main", 0)

	tests := []struct {
		name string
		p    *models.FeeTransaction
	}{
		{"zero amount", payment("E1", 0, 1, "Main")},
		{"negative amount", payment("E1", -50, 1, "Main")},
		{"term too low", payment("E1", 100, 0, "Main")},
		{"term too high", payment("E1", 100, 4, "Main")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := RecordFeePayment(db, tt.p); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
	requireBalance(t, db, "Main", 0)
	if n := countRows(t, db, "fees_transactions"); n != 0 {
		t.Fatalf("expected no transactions, got %d", n)
	}
}

// If the balance update fails after the transaction row was inserted, the
// insert must be rolled back with it: no payment row without its balance
// effect.
func TestRecordFeePaymentAtomicUnderBalanceFailure(t *testing.T) {
	db := newTestDB(t)
	seedStudent(t, db, "E1", "Grade 1")
	seedAccount(t, db, "Main", 0)
	breakBalanceUpdates(t, db)

	if err := RecordFeePayment(db, payment("E1", 500, 1, "Main")); err == nil {
		t.Fatal("expected the payment to fail")
	}
	requireBalance(t, db, "Main", 0)
	if n := countRows(t, db, "fees_transactions"); n != 0 {
		t.Fatalf("stray transaction row survived the rollback: %d", n)
	}
}

// The central invariant: after any sequence of payments and settlements,
// each balance equals the opening balance plus the net signed effect of
// everything committed against the account.
func TestBalanceConsistencyAcrossMixedOperations(t *testing.T) {
	db := newTestDB(t)
	seedStudent(t, db, "E1", "Grade 1")
	seedStudent(t, db, "E2", "Grade 2")
	seedAccount(t, db, "Main", 1000)

	if err := RecordFeePayment(db, payment("E1", 500, 1, "Main")); err != nil {
		t.Fatalf("payment 1: %v", err)
	}
	if err := RecordFeePayment(db, payment("E2", 250, 1, "Main")); err != nil {
		t.Fatalf("payment 2: %v", err)
	}

	r := seedReceivable(t, db, "Main", 1000, "E1", daysFromNow(7))
	if err := MarkReceivableReceived(db, r.ID); err != nil {
		t.Fatalf("settle receivable: %v", err)
	}

	p := seedPayable(t, db, "Main", 300, daysFromNow(7))
	if err := MarkPayablePaid(db, p.ID); err != nil {
		t.Fatalf("settle payable: %v", err)
	}

	// A pending obligation must not move the balance.
	seedReceivable(t, db, "Main", 9999, "E2", daysFromNow(7))
	seedPayable(t, db, "Main", 9999, daysFromNow(7))

	// 1000 + 500 + 250 + 1000 - 300
	requireBalance(t, db, "Main", 2450)

	// Cross-check against the recorded history, the way an auditor would.
	var paid, received, spent decimal.NullDecimal
	if err := db.QueryRow(`SELECT SUM(amount) FROM fees_transactions`).Scan(&paid); err != nil {
		t.Fatal(err)
	}
	if err := db.QueryRow(`SELECT SUM(amount) FROM receivables WHERE status = 'Received'`).Scan(&received); err != nil {
		t.Fatal(err)
	}
	if err := db.QueryRow(`SELECT SUM(amount) FROM payables WHERE status = 'Paid'`).Scan(&spent); err != nil {
		t.Fatal(err)
	}
	expected := decimal.NewFromInt(1000).Add(paid.Decimal).Add(received.Decimal).Sub(spent.Decimal)
	if got := accountBalance(t, db, "Main"); !got.Equal(expected) {
		t.Fatalf("balance %s does not match recorded history %s", got, expected)
	}
}
