package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ProfStephanos/school-finance-management-system/app/config"
)

// SetupStudentsRoutes sets up the students routes
func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")

	api.Get("/", func(c *fiber.Ctx) error {
		return GetStudentsAPI(c, config.GetDB())
	})

	api.Get("/:nemis", func(c *fiber.Ctx) error {
		return GetStudentAPI(c, config.GetDB())
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return EnrollStudentAPI(c, config.GetDB())
	})
}
