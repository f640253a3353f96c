package database

import (
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/ProfStephanos/school-finance-management-system/app/models"
)

// GetDashboardStats returns the summary counters for the finance dashboard:
// record counts, the balance held across all accounts, and the pending
// receivable/payable exposure. Read-only; it never touches the write path.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	if err := db.QueryRow(`SELECT COUNT(*) FROM students`).Scan(&stats.TotalStudents); err != nil {
		return nil, err
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM accounts`).Scan(&stats.TotalAccounts); err != nil {
		return nil, err
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM fees_transactions`).Scan(&stats.TotalTransactions); err != nil {
		return nil, err
	}

	var totalBalance decimal.NullDecimal
	if err := db.QueryRow(`SELECT SUM(current_balance) FROM accounts`).Scan(&totalBalance); err != nil {
		return nil, err
	}
	if totalBalance.Valid {
		stats.TotalBalance = totalBalance.Decimal
	}

	var pendingReceivables decimal.NullDecimal
	err := db.QueryRow(`SELECT COUNT(*), SUM(amount) FROM receivables WHERE status = 'Pending'`).
		Scan(&stats.PendingReceivablesCount, &pendingReceivables)
	if err != nil {
		return nil, err
	}
	if pendingReceivables.Valid {
		stats.PendingReceivablesTotal = pendingReceivables.Decimal
	}

	var pendingPayables decimal.NullDecimal
	err = db.QueryRow(`SELECT COUNT(*), SUM(amount) FROM payables WHERE status = 'Pending'`).
		Scan(&stats.PendingPayablesCount, &pendingPayables)
	if err != nil {
		return nil, err
	}
	if pendingPayables.Valid {
		stats.PendingPayablesTotal = pendingPayables.Decimal
	}

	return stats, nil
}
