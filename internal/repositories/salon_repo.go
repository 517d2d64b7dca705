package repositories

import (
	"salonstore/internal/models"
)

// SalonRepository defines the interface for salon, staff and treatment data
// access. Staff and treatments always belong to a salon, so the aggregate is
// managed through one repository.
type SalonRepository interface {
	CreateSalon(salon *models.Salon) error
	GetSalons() ([]models.Salon, error)
	GetSalonByID(id string) (*models.Salon, error)
	UpdateSalon(salon *models.Salon) error
	DeleteSalon(id string) error

	CreateStaff(staff *models.Staff) error
	GetStaffBySalon(salonID string) ([]models.Staff, error)
	GetStaffByID(id string) (*models.Staff, error)
	DeleteStaff(id string) error

	CreateTreatment(treatment *models.Treatment) error
	GetTreatmentsBySalon(salonID string) ([]models.Treatment, error)
	GetTreatmentByID(id string) (*models.Treatment, error)
	DeleteTreatment(id string) error
}
