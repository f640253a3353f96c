package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receivable is an amount owed to the school. It is created Pending and
// settled at most once; settling stamps DateReceived and credits the owning
// account. Amount, description and account are immutable after creation.
//
// StudentID is optional: receivables raised against a vendor or a whole
// class of income carry no student link. AccountName and NemisNumber are
// creation-time snapshots of the natural keys.
type Receivable struct {
	ID              string           `json:"id"`
	ReceivableType  string           `json:"receivable_type" validate:"required"`
	Description     string           `json:"description" validate:"required"`
	Amount          decimal.Decimal  `json:"amount"`
	DueDate         *time.Time       `json:"due_date,omitempty"`
	AccountID       string           `json:"account_id"`
	AccountName     string           `json:"account_name" validate:"required"`
	StudentID       *string          `json:"student_id,omitempty"`
	NemisNumber     *string          `json:"nemis_number,omitempty"`
	Status          ReceivableStatus `json:"status"`
	DateCreated     time.Time        `json:"date_created"`
	DateReceived    *time.Time       `json:"date_received,omitempty"`
	LastReminderDate *time.Time      `json:"last_reminder_date,omitempty"`

	// Joined for display only.
	StudentName string `json:"student_name,omitempty"`
	Source      string `json:"source,omitempty"` // "Auto" for generated term fees, "Manual" otherwise
}

// FeeReminder is one row of the reminder worklist: a pending receivable
// whose due date is inside the lookahead window, with the guardian contact
// to notify.
type FeeReminder struct {
	ReceivableID string          `json:"receivable_id"`
	Contact      string          `json:"contact"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      time.Time       `json:"due_date"`
	Description  string          `json:"description"`
}
