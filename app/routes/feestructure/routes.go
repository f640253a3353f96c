package feestructure

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ProfStephanos/school-finance-management-system/app/config"
)

// SetupFeeStructureRoutes sets up the fee structure routes
func SetupFeeStructureRoutes(app *fiber.App) {
	api := app.Group("/api/fee-structure")

	api.Get("/", func(c *fiber.Ctx) error {
		return GetFeeStructureAPI(c, config.GetDB())
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return UpsertFeeStructureAPI(c, config.GetDB())
	})

	api.Delete("/", func(c *fiber.Ctx) error {
		return DeleteFeeStructureAPI(c, config.GetDB())
	})
}
