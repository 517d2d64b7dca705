package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"salonstore/internal/models"
	"salonstore/internal/repositories"
	"salonstore/pkg/rabbitmq"
)

// BookingRequest carries the caller-supplied fields for a new appointment.
type BookingRequest struct {
	SalonID     string    `json:"salon_id" validate:"required,uuid"`
	StaffID     string    `json:"staff_id" validate:"required,uuid"`
	TreatmentID string    `json:"treatment_id" validate:"required,uuid"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	Notes       string    `json:"notes" validate:"omitempty,max=500"`
}

// BookingService handles business logic for appointments.
type BookingService struct {
	bookingRepo repositories.BookingRepository
	salonRepo   repositories.SalonRepository
	mqClient    *rabbitmq.Client // nil disables event publishing
}

// NewBookingService creates a new BookingService.
func NewBookingService(bookingRepo repositories.BookingRepository, salonRepo repositories.SalonRepository, mqClient *rabbitmq.Client) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		salonRepo:   salonRepo,
		mqClient:    mqClient,
	}
}

// CreateBooking books a treatment with a staff member. The end time is
// derived from the treatment's duration; treatment and staff member must
// both belong to the requested salon. The repository rejects overlapping
// bookings for the staff member.
func (s *BookingService) CreateBooking(userID string, req BookingRequest) (*models.Booking, error) {
	treatment, err := s.salonRepo.GetTreatmentByID(req.TreatmentID)
	if err != nil {
		return nil, err
	}
	if treatment.SalonID != req.SalonID {
		return nil, fmt.Errorf("treatment %s is not offered by salon %s", req.TreatmentID, req.SalonID)
	}

	staff, err := s.salonRepo.GetStaffByID(req.StaffID)
	if err != nil {
		return nil, err
	}
	if staff.SalonID != req.SalonID {
		return nil, fmt.Errorf("staff member %s does not work at salon %s", req.StaffID, req.SalonID)
	}

	if !req.StartsAt.After(time.Now()) {
		return nil, fmt.Errorf("booking start time must be in the future")
	}

	booking := &models.Booking{
		UserID:      userID,
		SalonID:     req.SalonID,
		StaffID:     req.StaffID,
		TreatmentID: req.TreatmentID,
		StartsAt:    req.StartsAt,
		EndsAt:      req.StartsAt.Add(time.Duration(treatment.DurationMinutes) * time.Minute),
		Status:      models.BookingStatusPending,
		Notes:       req.Notes,
	}
	if err := s.bookingRepo.Create(booking); err != nil {
		return nil, err
	}

	s.publishEvent("booking.created", map[string]interface{}{
		"booking_id": booking.ID,
		"user_id":    booking.UserID,
		"salon_id":   booking.SalonID,
		"staff_id":   booking.StaffID,
		"starts_at":  booking.StartsAt,
	})

	return booking, nil
}

// GetBookingByID retrieves one booking.
func (s *BookingService) GetBookingByID(id string) (*models.Booking, error) {
	return s.bookingRepo.GetByID(id)
}

// GetBookingsByUser retrieves all bookings of a user.
func (s *BookingService) GetBookingsByUser(userID string) ([]models.Booking, error) {
	return s.bookingRepo.GetByUser(userID)
}

// UpdateBookingStatus updates the status of a booking.
func (s *BookingService) UpdateBookingStatus(id string, status models.BookingStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid booking status: %s", status)
	}
	return s.bookingRepo.UpdateStatus(id, status)
}

// CancelBooking marks a booking cancelled, freeing the staff member's slot.
func (s *BookingService) CancelBooking(id string) error {
	return s.bookingRepo.UpdateStatus(id, models.BookingStatusCancelled)
}

func (s *BookingService) publishEvent(eventType string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", eventType, err)
		return
	}
	if err := s.mqClient.Publish(eventType, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
