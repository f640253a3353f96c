package services

import (
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ProfStephanos/school-finance-management-system/app/config"
	"github.com/ProfStephanos/school-finance-management-system/app/database"
)

// StartScheduler starts the background reminder loop. It checks once at
// startup and then every morning at 08:00.
func StartScheduler(db *sql.DB, lookaheadDays int) {
	go func() {
		log := config.GetLogger()
		log.Info("Fee reminder scheduler started")

		if _, err := CheckFeeReminders(db, lookaheadDays); err != nil {
			log.WithError(err).Error("Fee reminder check failed")
		}

		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()
			if now.Hour() == 8 && now.Minute() == 0 {
				if _, err := CheckFeeReminders(db, lookaheadDays); err != nil {
					log.WithError(err).Error("Fee reminder check failed")
				}
			}
		}
	}()
}

// CheckFeeReminders selects pending receivables due within the lookahead
// window that have not been reminded today, emits one reminder per row and
// stamps it. A failed stamp is logged and skipped: the worst case is a
// duplicate reminder tomorrow, never a ledger inconsistency. Returns the
// number of reminders sent.
func CheckFeeReminders(db *sql.DB, lookaheadDays int) (int, error) {
	log := config.GetLogger()

	reminders, err := database.GetPendingReminders(db, lookaheadDays)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, r := range reminders {
		log.WithFields(logrus.Fields{
			"receivable_id": r.ReceivableID,
			"contact":       r.Contact,
			"amount":        r.Amount.String(),
			"due_date":      r.DueDate.Format("2006-01-02"),
		}).Infof("Fee reminder: %s", r.Description)

		if err := database.UpdateReminderDate(db, r.ReceivableID); err != nil {
			log.WithError(err).WithField("receivable_id", r.ReceivableID).
				Warn("Failed to stamp reminder date; it will be retried next run")
			continue
		}
		sent++
	}

	if sent > 0 {
		log.Infof("Sent %d fee reminders", sent)
	}
	return sent, nil
}
