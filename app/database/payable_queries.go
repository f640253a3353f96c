package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ProfStephanos/school-finance-management-system/app/models"
)

// CreatePayable records an amount the school owes a vendor, in state
// Pending. The paying account is resolved inside the insert transaction.
func CreatePayable(db *sql.DB, payable *models.Payable) error {
	if payable.PayableType == "" || payable.Description == "" || payable.AccountName == "" || payable.Vendor == "" {
		return fmt.Errorf("%w: type, description, account and vendor are required", ErrInvalidInput)
	}
	if !payable.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalidInput)
	}

	tx, err := begin(db)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	accountID, err := ResolveAccount(tx, payable.AccountName)
	if err != nil {
		return err
	}

	payable.ID = uuid.NewString()
	payable.AccountID = accountID
	payable.Status = models.PayablePending
	payable.DateCreated = time.Now()

	query := `INSERT INTO payables (id, payable_type, description, amount, due_date, account_id, account_name, vendor, status, date_created)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.Exec(query,
		payable.ID, payable.PayableType, payable.Description, payable.Amount,
		payable.DueDate, payable.AccountID, payable.AccountName, payable.Vendor,
		payable.Status, payable.DateCreated,
	)
	if err != nil {
		return fmt.Errorf("failed to add payable: %w", err)
	}

	return commit(tx)
}

// MarkPayablePaid settles a pending payable: status flips to Paid,
// date_paid is stamped and the owning account is debited, atomically.
// Settling twice never double-applies the debit; the second call returns
// ErrAlreadySettled.
func MarkPayablePaid(db *sql.DB, id string) error {
	tx, err := begin(db)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var amount decimal.Decimal
	var accountID string
	err = tx.QueryRow(`SELECT amount, account_id FROM payables WHERE id = $1 AND status = 'Pending'`, id).
		Scan(&amount, &accountID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: payable %s", ErrAlreadySettled, id)
	}
	if err != nil {
		return fmt.Errorf("failed to load payable: %w", err)
	}

	res, err := tx.Exec(`UPDATE payables SET status = 'Paid', date_paid = $1 WHERE id = $2 AND status = 'Pending'`,
		time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to mark payable as paid: %w", err)
	}
	if affected, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to mark payable as paid: %w", err)
	} else if affected == 0 {
		return fmt.Errorf("%w: payable %s", ErrAlreadySettled, id)
	}

	if err := AdjustBalance(tx, accountID, amount.Neg()); err != nil {
		return err
	}

	return commit(tx)
}

// GetPayables returns payables filtered by status ("" for all), ordered by
// due date ascending with undated payables last.
func GetPayables(db *sql.DB, status models.PayableStatus) ([]*models.Payable, error) {
	query := `SELECT id, payable_type, description, amount, due_date,
			  account_id, account_name, vendor, status, date_created, date_paid
			  FROM payables`

	var args []interface{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, string(status))
	}
	query += ` ORDER BY due_date ASC NULLS LAST`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payables := []*models.Payable{}
	for rows.Next() {
		p := &models.Payable{}
		err := rows.Scan(
			&p.ID, &p.PayableType, &p.Description, &p.Amount, &p.DueDate,
			&p.AccountID, &p.AccountName, &p.Vendor, &p.Status, &p.DateCreated, &p.DatePaid,
		)
		if err != nil {
			return nil, err
		}
		payables = append(payables, p)
	}
	return payables, rows.Err()
}
