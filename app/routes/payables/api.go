package payables

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/ProfStephanos/school-finance-management-system/app/database"
	"github.com/ProfStephanos/school-finance-management-system/app/models"
	"github.com/ProfStephanos/school-finance-management-system/app/routes/respond"
)

var validate = validator.New()

// CreatePayableRequest is the payload for adding a payable.
type CreatePayableRequest struct {
	PayableType string          `json:"payable_type" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     *string         `json:"due_date,omitempty"` // YYYY-MM-DD
	AccountName string          `json:"account_name" validate:"required"`
	Vendor      string          `json:"vendor" validate:"required"`
}

// GetPayablesAPI returns payables, optionally filtered by
// ?status=Pending|Paid, ordered by due date with undated items last.
func GetPayablesAPI(c *fiber.Ctx, db *sql.DB) error {
	status := models.PayableStatus(c.Query("status"))
	if status != "" && status != models.PayablePending && status != models.PayablePaid {
		return fiber.NewError(fiber.StatusBadRequest, "status must be Pending or Paid")
	}

	payables, err := database.GetPayables(db, status)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    payables,
	})
}

// CreatePayableAPI adds a pending payable.
func CreatePayableAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CreatePayableRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields: "+err.Error())
	}

	payable := &models.Payable{
		PayableType: req.PayableType,
		Description: req.Description,
		Amount:      req.Amount,
		AccountName: req.AccountName,
		Vendor:      req.Vendor,
	}
	if req.DueDate != nil && *req.DueDate != "" {
		due, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "due_date must be YYYY-MM-DD")
		}
		payable.DueDate = &due
	}

	if err := database.CreatePayable(db, payable); err != nil {
		return respond.Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    payable,
		"message": "Payable added successfully",
	})
}

// MarkPaidAPI settles a payable, debiting its account exactly once.
func MarkPaidAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.MarkPayablePaid(db, c.Params("id")); err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Payable marked as paid",
	})
}
