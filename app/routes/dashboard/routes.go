package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ProfStephanos/school-finance-management-system/app/config"
)

// SetupDashboardRoutes sets up the dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")

	api.Get("/stats", func(c *fiber.Ctx) error {
		return GetStatsAPI(c, config.GetDB())
	})
}
