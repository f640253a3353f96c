package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ProfStephanos/school-finance-management-system/app/models"
)

// CreateReceivable records an amount owed to the school in state Pending.
// The account is required; the student link is optional and absent for
// receivables that are not tied to a particular learner. Both are resolved
// inside the insert transaction so a half-created receivable can never
// reference a missing record.
func CreateReceivable(db *sql.DB, receivable *models.Receivable) error {
	if receivable.ReceivableType == "" || receivable.Description == "" || receivable.AccountName == "" {
		return fmt.Errorf("%w: type, description and account are required", ErrInvalidInput)
	}
	if !receivable.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalidInput)
	}

	tx, err := begin(db)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	accountID, err := ResolveAccount(tx, receivable.AccountName)
	if err != nil {
		return err
	}

	var studentID *string
	if receivable.NemisNumber != nil && *receivable.NemisNumber != "" {
		id, err := ResolveStudent(tx, *receivable.NemisNumber)
		if err != nil {
			return err
		}
		studentID = &id
	} else {
		receivable.NemisNumber = nil
	}

	receivable.ID = uuid.NewString()
	receivable.AccountID = accountID
	receivable.StudentID = studentID
	receivable.Status = models.ReceivablePending
	receivable.DateCreated = time.Now()

	query := `INSERT INTO receivables (id, receivable_type, description, amount, due_date, account_id, account_name, student_id, nemis_number, status, date_created)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.Exec(query,
		receivable.ID, receivable.ReceivableType, receivable.Description, receivable.Amount,
		receivable.DueDate, receivable.AccountID, receivable.AccountName,
		receivable.StudentID, receivable.NemisNumber, receivable.Status, receivable.DateCreated,
	)
	if err != nil {
		return fmt.Errorf("failed to add receivable: %w", err)
	}

	return commit(tx)
}

// MarkReceivableReceived settles a pending receivable: it flips the status
// to Received, stamps date_received and credits the owning account, all in
// one transaction. The read is filtered on status = 'Pending', so of two
// concurrent settles only the one that observes the pending row proceeds;
// a second call finds nothing and returns ErrAlreadySettled with the
// balance untouched.
func MarkReceivableReceived(db *sql.DB, id string) error {
	tx, err := begin(db)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var amount decimal.Decimal
	var accountID string
	err = tx.QueryRow(`SELECT amount, account_id FROM receivables WHERE id = $1 AND status = 'Pending'`, id).
		Scan(&amount, &accountID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: receivable %s", ErrAlreadySettled, id)
	}
	if err != nil {
		return fmt.Errorf("failed to load receivable: %w", err)
	}

	res, err := tx.Exec(`UPDATE receivables SET status = 'Received', date_received = $1 WHERE id = $2 AND status = 'Pending'`,
		time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to mark receivable as received: %w", err)
	}
	if affected, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to mark receivable as received: %w", err)
	} else if affected == 0 {
		return fmt.Errorf("%w: receivable %s", ErrAlreadySettled, id)
	}

	if err := AdjustBalance(tx, accountID, amount); err != nil {
		return err
	}

	return commit(tx)
}

// GetReceivables returns receivables filtered by status ("" for all),
// ordered by due date ascending. Undated receivables sort last. Each row
// carries the student's name when linked and an Auto/Manual source label:
// receivables produced by the term fee generator are recognisable by their
// "Term N Fee" description.
func GetReceivables(db *sql.DB, status models.ReceivableStatus) ([]*models.Receivable, error) {
	query := `SELECT r.id, r.receivable_type, r.description, r.amount, r.due_date,
			  r.account_id, r.account_name, r.student_id, r.nemis_number,
			  COALESCE(s.student_name, 'N/A'),
			  r.status, r.date_created, r.date_received, r.last_reminder_date
			  FROM receivables r
			  LEFT JOIN students s ON r.student_id = s.id`

	var args []interface{}
	if status != "" {
		query += ` WHERE r.status = $1`
		args = append(args, string(status))
	}
	query += ` ORDER BY r.due_date ASC NULLS LAST`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	receivables := []*models.Receivable{}
	for rows.Next() {
		r := &models.Receivable{}
		err := rows.Scan(
			&r.ID, &r.ReceivableType, &r.Description, &r.Amount, &r.DueDate,
			&r.AccountID, &r.AccountName, &r.StudentID, &r.NemisNumber,
			&r.StudentName,
			&r.Status, &r.DateCreated, &r.DateReceived, &r.LastReminderDate,
		)
		if err != nil {
			return nil, err
		}
		r.Source = "Manual"
		if strings.HasPrefix(r.Description, "Term ") && strings.Contains(r.Description, " Fee") {
			r.Source = "Auto"
		}
		receivables = append(receivables, r)
	}
	return receivables, rows.Err()
}
