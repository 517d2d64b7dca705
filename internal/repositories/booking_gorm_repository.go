package repositories

import (
	"errors"
	"fmt"
	"time"

	"salonstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMBookingRepository is a GORM implementation of BookingRepository.
type GORMBookingRepository struct {
	db *gorm.DB
}

// NewGORMBookingRepository creates a new instance of GORMBookingRepository.
func NewGORMBookingRepository(db *gorm.DB) *GORMBookingRepository {
	return &GORMBookingRepository{
		db: db,
	}
}

// Create inserts a booking. The overlap check and the insert run in one
// transaction so two requests for the same slot cannot both succeed.
func (r *GORMBookingRepository) Create(booking *models.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	return r.db.Transaction(func(tx *gorm.DB) error {
		var overlapping int64
		err := tx.Model(&models.Booking{}).
			Where("staff_id = ? AND status <> ? AND starts_at < ? AND ends_at > ?",
				booking.StaffID, models.BookingStatusCancelled, booking.EndsAt, booking.StartsAt).
			Count(&overlapping).Error
		if err != nil {
			return fmt.Errorf("failed to check staff availability: %w", err)
		}
		if overlapping > 0 {
			return fmt.Errorf("staff %s between %s and %s: %w",
				booking.StaffID, booking.StartsAt.Format(time.RFC3339),
				booking.EndsAt.Format(time.RFC3339), models.ErrSlotTaken)
		}
		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a single booking by its ID.
func (r *GORMBookingRepository) GetByID(id string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking with ID %s: %w", id, models.ErrBookingNotFound)
		}
		return nil, fmt.Errorf("failed to get booking by ID %s: %w", id, err)
	}
	return &booking, nil
}

// GetByUser retrieves all bookings of a user, newest first.
func (r *GORMBookingRepository) GetByUser(userID string) ([]models.Booking, error) {
	bookings := []models.Booking{}
	if err := r.db.Where("user_id = ?", userID).Order("starts_at DESC").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to get bookings for user %s: %w", userID, err)
	}
	return bookings, nil
}

// UpdateStatus updates the status of a booking.
func (r *GORMBookingRepository) UpdateStatus(id string, status models.BookingStatus) error {
	res := r.db.Model(&models.Booking{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update status for booking %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("booking with ID %s: %w", id, models.ErrBookingNotFound)
	}
	return nil
}
