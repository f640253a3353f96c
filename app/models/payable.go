package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payable is an amount owed by the school to a vendor. Same lifecycle shape
// as Receivable but settling debits the owning account and stamps DatePaid.
type Payable struct {
	ID          string          `json:"id"`
	PayableType string          `json:"payable_type" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	AccountID   string          `json:"account_id"`
	AccountName string          `json:"account_name" validate:"required"`
	Vendor      string          `json:"vendor" validate:"required"`
	Status      PayableStatus   `json:"status"`
	DateCreated time.Time       `json:"date_created"`
	DatePaid    *time.Time      `json:"date_paid,omitempty"`
}
