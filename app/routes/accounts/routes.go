package accounts

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ProfStephanos/school-finance-management-system/app/config"
)

// SetupAccountsRoutes sets up the accounts routes
func SetupAccountsRoutes(app *fiber.App) {
	api := app.Group("/api/accounts")

	api.Get("/", func(c *fiber.Ctx) error {
		return GetAccountsAPI(c, config.GetDB())
	})

	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetAccountAPI(c, config.GetDB())
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateAccountAPI(c, config.GetDB())
	})
}
