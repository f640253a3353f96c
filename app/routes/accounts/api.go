package accounts

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/ProfStephanos/school-finance-management-system/app/database"
	"github.com/ProfStephanos/school-finance-management-system/app/models"
	"github.com/ProfStephanos/school-finance-management-system/app/routes/respond"
)

var validate = validator.New()

// GetAccountsAPI returns all accounts in creation order.
func GetAccountsAPI(c *fiber.Ctx, db *sql.DB) error {
	accounts, err := database.GetAccounts(db)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    accounts,
	})
}

// GetAccountAPI returns one account by id.
func GetAccountAPI(c *fiber.Ctx, db *sql.DB) error {
	account, err := database.GetAccountByID(db, c.Params("id"))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    account,
	})
}

// CreateAccountAPI opens a new school account. The opening balance defaults
// to zero; a negative opening balance is rejected.
func CreateAccountAPI(c *fiber.Ctx, db *sql.DB) error {
	var account models.Account
	if err := c.BodyParser(&account); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&account); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields: "+err.Error())
	}
	if account.OpeningBalance.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "Opening balance must not be negative")
	}

	if err := database.CreateAccount(db, &account); err != nil {
		return respond.Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    account,
		"message": "Account created successfully",
	})
}
