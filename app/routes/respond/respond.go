// Package respond maps ledger engine errors onto HTTP responses so every
// route package reports failures the same way.
package respond

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ProfStephanos/school-finance-management-system/app/database"
)

// Error writes a JSON error response with the status implied by the engine
// error taxonomy.
func Error(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, database.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, database.ErrReferenceNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, database.ErrDuplicateKey),
		errors.Is(err, database.ErrAlreadySettled),
		errors.Is(err, database.ErrNoAccountConfigured),
		errors.Is(err, database.ErrNoScheduleForTerm):
		return fiber.StatusConflict
	case errors.Is(err, database.ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
