package handlers

import (
	"errors"

	"salonstore/internal/models"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps business errors to HTTP status codes. Anything not in
// the taxonomy is an unexpected persistence failure and surfaces as a 500.
func statusForError(err error) int {
	var insufficient *models.InsufficientInventoryError
	switch {
	case errors.Is(err, models.ErrEmptyCart):
		return fiber.StatusBadRequest
	case errors.As(err, &insufficient):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrInventoryRace):
		return fiber.StatusConflict
	case errors.Is(err, models.ErrOrderNotFound),
		errors.Is(err, models.ErrProductNotFound),
		errors.Is(err, models.ErrCartItemNotFound),
		errors.Is(err, models.ErrBookingNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrSlotTaken):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}
