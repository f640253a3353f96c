package students

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/ProfStephanos/school-finance-management-system/app/database"
	"github.com/ProfStephanos/school-finance-management-system/app/models"
	"github.com/ProfStephanos/school-finance-management-system/app/routes/respond"
)

var validate = validator.New()

// GetStudentsAPI returns all enrolled students ordered by name.
func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	students, err := database.GetStudents(db)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    students,
	})
}

// GetStudentAPI returns one student by NEMIS number.
func GetStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	student, err := database.GetStudentByNemis(db, c.Params("nemis"))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

// EnrollStudentAPI enrolls a new student.
func EnrollStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&student); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields: "+err.Error())
	}

	if err := database.CreateStudent(db, &student); err != nil {
		return respond.Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    student,
		"message": "Student enrolled successfully",
	})
}
