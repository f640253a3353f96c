package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ProfStephanos/school-finance-management-system/app/models"
)

// RecordFeePayment records a fee payment against a student and credits the
// receiving account, as one atomic unit: either the immutable transaction
// row and the balance change both commit, or neither does.
//
// The student and account are passed by natural key (NEMIS number, account
// name) and resolved inside the same transaction; a failed lookup aborts
// the whole operation before anything is written.
func RecordFeePayment(db *sql.DB, payment *models.FeeTransaction) error {
	if !payment.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalidInput)
	}
	if !models.ValidTerm(payment.Term) {
		return fmt.Errorf("%w: term must be 1, 2 or 3", ErrInvalidInput)
	}

	tx, err := begin(db)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	studentID, err := ResolveStudent(tx, payment.NemisNumber)
	if err != nil {
		return err
	}
	accountID, err := ResolveAccount(tx, payment.SchoolAccount)
	if err != nil {
		return err
	}

	payment.ID = uuid.NewString()
	payment.StudentID = studentID
	payment.AccountID = accountID
	payment.Date = time.Now()

	query := `INSERT INTO fees_transactions (id, student_id, nemis_number, amount, term, date, account_id, school_account)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = tx.Exec(query,
		payment.ID, payment.StudentID, payment.NemisNumber, payment.Amount,
		payment.Term, payment.Date, payment.AccountID, payment.SchoolAccount,
	)
	if err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}

	if err := AdjustBalance(tx, accountID, payment.Amount); err != nil {
		return err
	}

	return commit(tx)
}

// GetTransactions returns the full payment history, newest first.
func GetTransactions(db *sql.DB) ([]*models.FeeTransaction, error) {
	query := `SELECT ft.id, ft.student_id, s.student_name, ft.nemis_number, ft.amount, ft.term,
			  ft.date, ft.account_id, ft.school_account
			  FROM fees_transactions ft
			  JOIN students s ON ft.student_id = s.id
			  ORDER BY ft.date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []*models.FeeTransaction{}
	for rows.Next() {
		t := &models.FeeTransaction{}
		err := rows.Scan(
			&t.ID, &t.StudentID, &t.StudentName, &t.NemisNumber, &t.Amount, &t.Term,
			&t.Date, &t.AccountID, &t.SchoolAccount,
		)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
