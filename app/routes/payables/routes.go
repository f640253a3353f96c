package payables

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ProfStephanos/school-finance-management-system/app/config"
)

// SetupPayablesRoutes sets up the payables routes
func SetupPayablesRoutes(app *fiber.App) {
	api := app.Group("/api/payables")

	api.Get("/", func(c *fiber.Ctx) error {
		return GetPayablesAPI(c, config.GetDB())
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CreatePayableAPI(c, config.GetDB())
	})

	api.Post("/:id/pay", func(c *fiber.Ctx) error {
		return MarkPaidAPI(c, config.GetDB())
	})
}
