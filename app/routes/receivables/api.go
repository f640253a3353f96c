package receivables

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/ProfStephanos/school-finance-management-system/app/database"
	"github.com/ProfStephanos/school-finance-management-system/app/models"
	"github.com/ProfStephanos/school-finance-management-system/app/routes/respond"
	"github.com/ProfStephanos/school-finance-management-system/app/services"
)

var validate = validator.New()

// CreateReceivableRequest is the payload for adding a receivable. The
// NEMIS number is optional; without it the receivable has no student link.
type CreateReceivableRequest struct {
	ReceivableType string          `json:"receivable_type" validate:"required"`
	Description    string          `json:"description" validate:"required"`
	Amount         decimal.Decimal `json:"amount"`
	DueDate        *string         `json:"due_date,omitempty"` // YYYY-MM-DD
	AccountName    string          `json:"account_name" validate:"required"`
	NemisNumber    string          `json:"nemis_number,omitempty"`
}

// GetReceivablesAPI returns receivables, optionally filtered by
// ?status=Pending|Received, ordered by due date with undated items last.
func GetReceivablesAPI(c *fiber.Ctx, db *sql.DB) error {
	status := models.ReceivableStatus(c.Query("status"))
	if status != "" && status != models.ReceivablePending && status != models.ReceivableReceived {
		return fiber.NewError(fiber.StatusBadRequest, "status must be Pending or Received")
	}

	receivables, err := database.GetReceivables(db, status)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    receivables,
	})
}

// CreateReceivableAPI adds a pending receivable.
func CreateReceivableAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CreateReceivableRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields: "+err.Error())
	}

	receivable := &models.Receivable{
		ReceivableType: req.ReceivableType,
		Description:    req.Description,
		Amount:         req.Amount,
		AccountName:    req.AccountName,
	}
	if req.DueDate != nil && *req.DueDate != "" {
		due, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "due_date must be YYYY-MM-DD")
		}
		receivable.DueDate = &due
	}
	if req.NemisNumber != "" {
		receivable.NemisNumber = &req.NemisNumber
	}

	if err := database.CreateReceivable(db, receivable); err != nil {
		return respond.Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    receivable,
		"message": "Receivable added successfully",
	})
}

// MarkReceivedAPI settles a receivable, crediting its account exactly once.
func MarkReceivedAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.MarkReceivableReceived(db, c.Params("id")); err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Receivable marked as received",
	})
}

// GenerateExpectedFeesAPI bulk-creates tuition receivables for a term from
// the fee structure.
func GenerateExpectedFeesAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		Term int `json:"term"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	created, err := database.GenerateExpectedFees(db, req.Term)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":        true,
		"message":        "Expected fees generated successfully",
		"students_count": created,
	})
}

// GetRemindersAPI returns the current reminder worklist without stamping
// anything.
func GetRemindersAPI(c *fiber.Ctx, db *sql.DB, defaultLookahead int) error {
	lookahead := c.QueryInt("lookahead_days", defaultLookahead)

	reminders, err := database.GetPendingReminders(db, lookahead)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    reminders,
	})
}

// RunRemindersAPI runs one reminder pass immediately, same as the scheduled
// morning run.
func RunRemindersAPI(c *fiber.Ctx, db *sql.DB, defaultLookahead int) error {
	sent, err := services.CheckFeeReminders(db, defaultLookahead)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"sent":    sent,
	})
}
