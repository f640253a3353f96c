package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ProfStephanos/school-finance-management-system/app/models"
)

// GenerateExpectedFees materialises one pending tuition receivable per
// student for the given term, priced from the fee structure row matching
// the student's grade. All receivables are attached to the default account,
// which is the first account ever created.
//
// The whole batch runs in one transaction, so a single invocation is
// all-or-nothing. There is no dedupe key: invoking it twice for the same
// term creates a second receivable per student. Returns the number of
// receivables created.
func GenerateExpectedFees(db *sql.DB, term int) (int, error) {
	if !models.ValidTerm(term) {
		return 0, fmt.Errorf("%w: term must be 1, 2 or 3", ErrInvalidInput)
	}

	tx, err := begin(db)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var accountID, accountName string
	err = tx.QueryRow(`SELECT id, account_name FROM accounts ORDER BY date_created, id LIMIT 1`).
		Scan(&accountID, &accountName)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("%w: create an account before generating expected fees", ErrNoAccountConfigured)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to pick default account: %w", err)
	}

	rows, err := tx.Query(`
		SELECT s.id, s.nemis_number, s.grade, fs.amount
		FROM students s
		JOIN fee_structure fs ON s.grade = fs.grade
		WHERE fs.term = $1 AND fs.fee_type = 'Tuition'`, term)
	if err != nil {
		return 0, fmt.Errorf("failed to match students against the fee structure: %w", err)
	}

	type expectedFee struct {
		studentID   string
		nemisNumber string
		grade       string
		amount      decimal.Decimal
	}
	var matches []expectedFee
	for rows.Next() {
		var m expectedFee
		if err := rows.Scan(&m.studentID, &m.nemisNumber, &m.grade, &m.amount); err != nil {
			rows.Close()
			return 0, err
		}
		matches = append(matches, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	if len(matches) == 0 {
		return 0, fmt.Errorf("%w: term %d has no tuition rates covering enrolled students", ErrNoScheduleForTerm, term)
	}

	now := time.Now()
	dueDate := now
	for _, m := range matches {
		_, err := tx.Exec(`INSERT INTO receivables (id, receivable_type, description, amount, due_date, account_id, account_name, student_id, nemis_number, status, date_created)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			uuid.NewString(),
			"Tuition Fee",
			fmt.Sprintf("Term %d Fee for %s", term, m.grade),
			m.amount,
			dueDate,
			accountID,
			accountName,
			m.studentID,
			m.nemisNumber,
			models.ReceivablePending,
			now,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to generate receivable for student %s: %w", m.nemisNumber, err)
		}
	}

	if err := commit(tx); err != nil {
		return 0, err
	}
	return len(matches), nil
}
