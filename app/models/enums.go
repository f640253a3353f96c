package models

// ReceivableStatus defines the lifecycle states of a receivable.
type ReceivableStatus string

const (
	ReceivablePending  ReceivableStatus = "Pending"
	ReceivableReceived ReceivableStatus = "Received"
)

// PayableStatus defines the lifecycle states of a payable.
type PayableStatus string

const (
	PayablePending PayableStatus = "Pending"
	PayablePaid    PayableStatus = "Paid"
)

// School terms. Fee payments and fee structure rows are constrained to
// terms 1 through 3.
const (
	MinTerm = 1
	MaxTerm = 3
)

// ValidTerm reports whether t is one of the three school terms.
func ValidTerm(t int) bool {
	return t >= MinTerm && t <= MaxTerm
}
