package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ProfStephanos/school-finance-management-system/app/models"
)

// GetPendingReminders returns pending receivables with a student link whose
// due date falls inside [today, today+lookaheadDays] and that have not been
// reminded yet today. The window is computed here from the clock rather
// than in SQL so the query runs identically on PostgreSQL and SQLite.
func GetPendingReminders(db *sql.DB, lookaheadDays int) ([]*models.FeeReminder, error) {
	if lookaheadDays < 0 {
		return nil, fmt.Errorf("%w: lookahead days must not be negative", ErrInvalidInput)
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	windowEnd := todayStart.AddDate(0, 0, lookaheadDays+1) // exclusive

	query := `SELECT r.id, s.contact, r.amount, r.due_date, r.description
			  FROM receivables r
			  JOIN students s ON r.student_id = s.id
			  WHERE r.status = 'Pending'
			  AND r.due_date >= $1 AND r.due_date < $2
			  AND (r.last_reminder_date IS NULL OR r.last_reminder_date < $3)
			  ORDER BY r.due_date ASC`

	rows, err := db.Query(query, todayStart, windowEnd, todayStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reminders := []*models.FeeReminder{}
	for rows.Next() {
		r := &models.FeeReminder{}
		err := rows.Scan(&r.ReceivableID, &r.Contact, &r.Amount, &r.DueDate, &r.Description)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}

// UpdateReminderDate stamps the last reminder time on a receivable. A lost
// stamp only risks a duplicate reminder on the next run, so callers treat a
// failure here as log-and-continue, not fatal.
func UpdateReminderDate(db *sql.DB, receivableID string) error {
	res, err := db.Exec(`UPDATE receivables SET last_reminder_date = $1 WHERE id = $2`, time.Now(), receivableID)
	if err != nil {
		return fmt.Errorf("failed to update reminder date: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: receivable %s", ErrReferenceNotFound, receivableID)
	}
	return nil
}
