package dashboard

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/ProfStephanos/school-finance-management-system/app/database"
	"github.com/ProfStephanos/school-finance-management-system/app/routes/respond"
)

// GetStatsAPI returns the finance dashboard summary.
func GetStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	stats, err := database.GetDashboardStats(db)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
