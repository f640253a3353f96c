package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a school bank account. OpeningBalance is fixed at creation;
// CurrentBalance is only ever written through database.AdjustBalance so it
// always equals the opening balance plus the net effect of committed
// payments and settlements.
type Account struct {
	ID             string          `json:"id"`
	AccountName    string          `json:"account_name" validate:"required"`
	BankName       string          `json:"bank_name" validate:"required"`
	AccountNumber  string          `json:"account_number" validate:"required"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	DateCreated    time.Time       `json:"date_created"`
}
