package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeTransaction is an immutable fee payment record. Rows are append-only:
// there is no update or delete path anywhere in the engine.
//
// NemisNumber and SchoolAccount are creation-time snapshots of the student
// and account natural keys, kept for display; the authoritative references
// are StudentID and AccountID.
type FeeTransaction struct {
	ID            string          `json:"id"`
	StudentID     string          `json:"student_id"`
	NemisNumber   string          `json:"nemis_number" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Term          int             `json:"term" validate:"required,min=1,max=3"`
	Date          time.Time       `json:"date"`
	AccountID     string          `json:"account_id"`
	SchoolAccount string          `json:"school_account" validate:"required"`

	// Joined for display only.
	StudentName string `json:"student_name,omitempty"`
}
