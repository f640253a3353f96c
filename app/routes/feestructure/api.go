package feestructure

import (
	"database/sql"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/ProfStephanos/school-finance-management-system/app/database"
	"github.com/ProfStephanos/school-finance-management-system/app/models"
	"github.com/ProfStephanos/school-finance-management-system/app/routes/respond"
)

var validate = validator.New()

// GetFeeStructureAPI returns the whole rate table, newest year first.
func GetFeeStructureAPI(c *fiber.Ctx, db *sql.DB) error {
	items, err := database.GetFeeStructure(db)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
	})
}

// UpsertFeeStructureAPI creates or updates the rate for one
// (year, grade, term, fee type) key.
func UpsertFeeStructureAPI(c *fiber.Ctx, db *sql.DB) error {
	var item models.FeeStructureItem
	if err := c.BodyParser(&item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields: "+err.Error())
	}

	if err := database.UpsertFeeStructureItem(db, &item); err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    item,
		"message": "Fee structure item saved",
	})
}

// DeleteFeeStructureAPI removes one rate by its composite key, given as
// query parameters.
func DeleteFeeStructureAPI(c *fiber.Ctx, db *sql.DB) error {
	year := c.Query("year")
	grade := c.Query("grade")
	feeType := c.Query("fee_type")
	term, err := strconv.Atoi(c.Query("term"))
	if year == "" || grade == "" || feeType == "" || err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "year, grade, term and fee_type are required")
	}

	if err := database.DeleteFeeStructureItem(db, year, grade, term, feeType); err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Fee structure item deleted",
	})
}
