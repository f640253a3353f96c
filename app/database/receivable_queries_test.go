package database

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ProfStephanos/school-finance-management-system/app/models"
)

func TestCreateReceivableResolvesReferences(t *testing.T) {
	db := newTestDB(t)
	s := seedStudent(t, db, "E1", "Grade 1")
	a := seedAccount(t, db, "Main", 0)

	r := seedReceivable(t, db, "Main", 1000, "E1", daysFromNow(10))
	if r.AccountID != a.ID {
		t.Fatalf("account id %s, want %s", r.AccountID, a.ID)
	}
	if r.StudentID == nil || *r.StudentID != s.ID {
		t.Fatalf("student id %v, want %s", r.StudentID, s.ID)
	}
	if r.Status != models.ReceivablePending {
		t.Fatalf("status %s, want Pending", r.Status)
	}
	// Creating a receivable never moves the balance.
	requireBalance(t, db, "Main", 0)
}

func TestCreateReceivableWithoutStudent(t *testing.T) {
	db := newTestDB(t)
	seedAccount(t, db, "Main", 0)

	r := seedReceivable(t, db, "Main", 500, "", daysFromNow(10))
	if r.StudentID != nil || r.NemisNumber != nil {
		t.Fatalf("expected no student link, got %v / %v", r.StudentID, r.NemisNumber)
	}
}

func TestCreateReceivableUnknownReferences(t *testing.T) {
	db := newTestDB(t)
	seedAccount(t, db, "Main", 0)

	nemis := "ghost"
	err := CreateReceivable(db, &models.Receivable{
		ReceivableType: "Tuition Fee",
		Description:    "x",
		Amount:         decimal.NewFromInt(100),
		AccountName:    "Main",
		NemisNumber:    &nemis,
	})
	if !errors.Is(err, ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound for unknown student, got %v", err)
	}

	err = CreateReceivable(db, &models.Receivable{
		ReceivableType: "Tuition Fee",
		Description:    "x",
		Amount:         decimal.NewFromInt(100),
		AccountName:    "NoSuchAccount",
	})
	if !errors.Is(err, ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound for unknown account, got %v", err)
	}

	if n := countRows(t, db, "receivables"); n != 0 {
		t.Fatalf("expected no receivables, got %d", n)
	}
}

// Settling credits the account exactly once; the second settle is a no-op
// that reports ErrAlreadySettled.
func TestMarkReceivableReceivedIdempotent(t *testing.T) {
	db := newTestDB(t)
	seedStudent(t, db, "E1", "Grade 1")
	seedAccount(t, db, "Main", 0)
	r := seedReceivable(t, db, "Main", 1000, "E1", daysFromNow(10))

	if err := MarkReceivableReceived(db, r.ID); err != nil {
		t.Fatalf("first settle: %v", err)
	}
	requireBalance(t, db, "Main", 1000)

	settled, err := GetReceivables(db, models.ReceivableReceived)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(settled) != 1 || settled[0].DateReceived == nil {
		t.Fatalf("expected one settled receivable with date_received, got %+v", settled)
	}

	if err := MarkReceivableReceived(db, r.ID); !errors.Is(err, ErrAlreadySettled) {
		t.Fatalf("second settle: expected ErrAlreadySettled, got %v", err)
	}
	requireBalance(t, db, "Main", 1000)
}

func TestMarkReceivableReceivedUnknownID(t *testing.T) {
	db := newTestDB(t)
	seedAccount(t, db, "Main", 0)

	if err := MarkReceivableReceived(db, "no-such-id"); !errors.Is(err, ErrAlreadySettled) {
		t.Fatalf("expected ErrAlreadySettled, got %v", err)
	}
}

// A failed balance credit rolls the status flip back: the receivable stays
// Pending and can be settled later.
func TestMarkReceivableReceivedAtomicUnderBalanceFailure(t *testing.T) {
	db := newTestDB(t)
	seedStudent(t, db, "E1", "Grade 1")
	seedAccount(t, db, "Main", 0)
	r := seedReceivable(t, db, "Main", 1000, "E1", daysFromNow(10))
	breakBalanceUpdates(t, db)

	if err := MarkReceivableReceived(db, r.ID); err == nil {
		t.Fatal("expected settle to fail")
	}
	requireBalance(t, db, "Main", 0)

	pending, err := GetReceivables(db, models.ReceivablePending)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pending) != 1 || pending[0].Status != models.ReceivablePending {
		t.Fatalf("receivable should still be pending: %+v", pending)
	}
}

// Listing is ordered by due date ascending; receivables without a due date
// sort last.
func TestGetReceivablesOrdering(t *testing.T) {
	db := newTestDB(t)
	seedStudent(t, db, "E1", "Grade 1")
	seedAccount(t, db, "Main", 0)

	later := time.Now().AddDate(0, 0, 20)
	sooner := time.Now().AddDate(0, 0, 5)
	undated := seedReceivable(t, db, "Main", 10, "E1", nil)
	third := seedReceivable(t, db, "Main", 30, "E1", &later)
	first := seedReceivable(t, db, "Main", 20, "E1", &sooner)

	all, err := GetReceivables(db, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d receivables, want 3", len(all))
	}
	wantOrder := []string{first.ID, third.ID, undated.ID}
	for i, id := range wantOrder {
		if all[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, all[i].ID, id)
		}
	}
}

func TestGetReceivablesSourceLabel(t *testing.T) {
	db := newTestDB(t)
	seedStudent(t, db, "E1", "Grade 1")
	seedAccount(t, db, "Main", 0)
	seedFeeStructure(t, db, "2024", "Grade 1", 1, "Tuition", 2000)

	if _, err := GenerateExpectedFees(db, 1); err != nil {
		t.Fatalf("generate: %v", err)
	}
	seedReceivable(t, db, "Main", 100, "E1", nil)

	all, err := GetReceivables(db, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var auto, manual int
	for _, r := range all {
		switch r.Source {
		case "Auto":
			auto++
		case "Manual":
			manual++
		}
	}
	if auto != 1 || manual != 1 {
		t.Fatalf("got %d auto / %d manual, want 1 / 1", auto, manual)
	}
}
