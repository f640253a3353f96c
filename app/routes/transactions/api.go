package transactions

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/ProfStephanos/school-finance-management-system/app/database"
	"github.com/ProfStephanos/school-finance-management-system/app/models"
	"github.com/ProfStephanos/school-finance-management-system/app/routes/respond"
)

var validate = validator.New()

// RecordPaymentRequest is the payload for recording a fee payment. The
// student and account are named by their natural keys; the engine resolves
// them to internal ids.
type RecordPaymentRequest struct {
	NemisNumber string          `json:"nemis_number" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Term        int             `json:"term" validate:"required,min=1,max=3"`
	AccountName string          `json:"account_name" validate:"required"`
}

// GetTransactionsAPI returns the payment history, newest first.
func GetTransactionsAPI(c *fiber.Ctx, db *sql.DB) error {
	transactions, err := database.GetTransactions(db)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    transactions,
	})
}

// RecordPaymentAPI records a fee payment and credits the receiving account.
func RecordPaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields: "+err.Error())
	}

	payment := &models.FeeTransaction{
		NemisNumber:   req.NemisNumber,
		Amount:        req.Amount,
		Term:          req.Term,
		SchoolAccount: req.AccountName,
	}
	if err := database.RecordFeePayment(db, payment); err != nil {
		return respond.Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    payment,
		"message": "Payment recorded successfully",
	})
}
