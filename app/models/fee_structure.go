package models

import "github.com/shopspring/decimal"

// FeeStructureItem is one row of the fee rate table, keyed by
// (year, grade, term, fee type). It is a pure catalog entry with no link to
// students or accounts; editing it never touches existing receivables.
type FeeStructureItem struct {
	Year        string          `json:"year" validate:"required"`
	Grade       string          `json:"grade" validate:"required"`
	Term        int             `json:"term" validate:"required,min=1,max=3"`
	FeeType     string          `json:"fee_type" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}
