package models

import "time"

// BookingStatus is the lifecycle state of an appointment.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the known booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking represents an appointment for a treatment with a staff member.
// EndsAt is derived from the treatment's duration at creation time.
type Booking struct {
	ID          string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string        `json:"user_id" gorm:"index;type:varchar(36)"`
	SalonID     string        `json:"salon_id" gorm:"index;type:varchar(36)"`
	StaffID     string        `json:"staff_id" gorm:"index;type:varchar(36)"`
	TreatmentID string        `json:"treatment_id" gorm:"type:varchar(36)"`
	StartsAt    time.Time     `json:"starts_at"`
	EndsAt      time.Time     `json:"ends_at"`
	Status      BookingStatus `json:"status" gorm:"type:varchar(20)"`
	Notes       string        `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
