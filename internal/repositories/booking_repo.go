package repositories

import (
	"salonstore/internal/models"
)

// BookingRepository defines the interface for appointment data access.
type BookingRepository interface {
	// Create inserts a booking after checking, in the same transaction,
	// that the staff member has no overlapping non-cancelled booking.
	// Returns models.ErrSlotTaken on a conflict.
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetByUser(userID string) ([]models.Booking, error)
	UpdateStatus(id string, status models.BookingStatus) error
}
