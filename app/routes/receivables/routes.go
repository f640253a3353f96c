package receivables

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ProfStephanos/school-finance-management-system/app/config"
)

// SetupReceivablesRoutes sets up the receivables routes
func SetupReceivablesRoutes(app *fiber.App) {
	api := app.Group("/api/receivables")

	api.Get("/", func(c *fiber.Ctx) error {
		return GetReceivablesAPI(c, config.GetDB())
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateReceivableAPI(c, config.GetDB())
	})

	api.Post("/generate", func(c *fiber.Ctx) error {
		return GenerateExpectedFeesAPI(c, config.GetDB())
	})

	api.Get("/reminders", func(c *fiber.Ctx) error {
		return GetRemindersAPI(c, config.GetDB(), config.AppConfig.Reminders.LookaheadDays)
	})

	api.Post("/reminders/run", func(c *fiber.Ctx) error {
		return RunRemindersAPI(c, config.GetDB(), config.AppConfig.Reminders.LookaheadDays)
	})

	api.Post("/:id/receive", func(c *fiber.Ctx) error {
		return MarkReceivedAPI(c, config.GetDB())
	})
}
