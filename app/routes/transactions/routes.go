package transactions

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ProfStephanos/school-finance-management-system/app/config"
)

// SetupTransactionsRoutes sets up the fee payment routes
func SetupTransactionsRoutes(app *fiber.App) {
	api := app.Group("/api/transactions")

	api.Get("/", func(c *fiber.Ctx) error {
		return GetTransactionsAPI(c, config.GetDB())
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return RecordPaymentAPI(c, config.GetDB())
	})
}
