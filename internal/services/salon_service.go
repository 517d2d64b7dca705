package services

import (
	"salonstore/internal/models"
	"salonstore/internal/repositories"
)

// SalonService handles business logic for salon administration: salons,
// their staff and the treatments they offer.
type SalonService struct {
	repo repositories.SalonRepository
}

// NewSalonService creates a new SalonService.
func NewSalonService(repo repositories.SalonRepository) *SalonService {
	return &SalonService{
		repo: repo,
	}
}

// CreateSalon creates a new salon.
func (s *SalonService) CreateSalon(salon *models.Salon) error {
	return s.repo.CreateSalon(salon)
}

// GetSalons retrieves all salons.
func (s *SalonService) GetSalons() ([]models.Salon, error) {
	return s.repo.GetSalons()
}

// GetSalonByID retrieves a single salon by its ID.
func (s *SalonService) GetSalonByID(id string) (*models.Salon, error) {
	return s.repo.GetSalonByID(id)
}

// UpdateSalon updates an existing salon.
func (s *SalonService) UpdateSalon(salon *models.Salon) error {
	return s.repo.UpdateSalon(salon)
}

// DeleteSalon deletes a salon by its ID.
func (s *SalonService) DeleteSalon(id string) error {
	return s.repo.DeleteSalon(id)
}

// CreateStaff adds a staff member to a salon.
func (s *SalonService) CreateStaff(staff *models.Staff) error {
	return s.repo.CreateStaff(staff)
}

// GetStaffBySalon retrieves all staff members of a salon.
func (s *SalonService) GetStaffBySalon(salonID string) ([]models.Staff, error) {
	return s.repo.GetStaffBySalon(salonID)
}

// DeleteStaff removes a staff member.
func (s *SalonService) DeleteStaff(id string) error {
	return s.repo.DeleteStaff(id)
}

// CreateTreatment adds a treatment to a salon's offering.
func (s *SalonService) CreateTreatment(treatment *models.Treatment) error {
	return s.repo.CreateTreatment(treatment)
}

// GetTreatmentsBySalon retrieves all treatments offered by a salon.
func (s *SalonService) GetTreatmentsBySalon(salonID string) ([]models.Treatment, error) {
	return s.repo.GetTreatmentsBySalon(salonID)
}

// DeleteTreatment removes a treatment from a salon's offering.
func (s *SalonService) DeleteTreatment(id string) error {
	return s.repo.DeleteTreatment(id)
}
