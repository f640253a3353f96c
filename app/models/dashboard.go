package models

import "github.com/shopspring/decimal"

// DashboardStats holds the summary counters shown on the finance dashboard.
type DashboardStats struct {
	TotalStudents           int             `json:"total_students"`
	TotalAccounts           int             `json:"total_accounts"`
	TotalTransactions       int             `json:"total_transactions"`
	TotalBalance            decimal.Decimal `json:"total_balance"`
	PendingReceivablesCount int             `json:"pending_receivables_count"`
	PendingReceivablesTotal decimal.Decimal `json:"pending_receivables_total"`
	PendingPayablesCount    int             `json:"pending_payables_count"`
	PendingPayablesTotal    decimal.Decimal `json:"pending_payables_total"`
}
