package repositories

import (
	"errors"
	"fmt"

	"salonstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSalonRepository is a GORM implementation of SalonRepository.
type GORMSalonRepository struct {
	db *gorm.DB
}

// NewGORMSalonRepository creates a new instance of GORMSalonRepository.
func NewGORMSalonRepository(db *gorm.DB) *GORMSalonRepository {
	return &GORMSalonRepository{
		db: db,
	}
}

// CreateSalon creates a new salon in the database.
func (r *GORMSalonRepository) CreateSalon(salon *models.Salon) error {
	if salon.ID == "" {
		salon.ID = uuid.New().String()
	}
	if err := r.db.Create(salon).Error; err != nil {
		return fmt.Errorf("failed to create salon: %w", err)
	}
	return nil
}

// GetSalons retrieves all salons.
func (r *GORMSalonRepository) GetSalons() ([]models.Salon, error) {
	var salons []models.Salon
	if err := r.db.Find(&salons).Error; err != nil {
		return nil, fmt.Errorf("failed to get salons: %w", err)
	}
	return salons, nil
}

// GetSalonByID retrieves a single salon by its ID.
func (r *GORMSalonRepository) GetSalonByID(id string) (*models.Salon, error) {
	var salon models.Salon
	if err := r.db.First(&salon, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("salon with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get salon by ID %s: %w", id, err)
	}
	return &salon, nil
}

// UpdateSalon updates an existing salon.
func (r *GORMSalonRepository) UpdateSalon(salon *models.Salon) error {
	res := r.db.Save(salon)
	if res.Error != nil {
		return fmt.Errorf("failed to update salon: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("salon with ID %s not found for update", salon.ID)
	}
	return nil
}

// DeleteSalon deletes a salon by its ID.
func (r *GORMSalonRepository) DeleteSalon(id string) error {
	res := r.db.Delete(&models.Salon{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete salon: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("salon with ID %s not found for deletion", id)
	}
	return nil
}

// CreateStaff creates a new staff member for a salon.
func (r *GORMSalonRepository) CreateStaff(staff *models.Staff) error {
	if staff.ID == "" {
		staff.ID = uuid.New().String()
	}
	if err := r.db.Create(staff).Error; err != nil {
		return fmt.Errorf("failed to create staff member: %w", err)
	}
	return nil
}

// GetStaffBySalon retrieves all staff members of a salon.
func (r *GORMSalonRepository) GetStaffBySalon(salonID string) ([]models.Staff, error) {
	var staff []models.Staff
	if err := r.db.Where("salon_id = ?", salonID).Find(&staff).Error; err != nil {
		return nil, fmt.Errorf("failed to get staff for salon %s: %w", salonID, err)
	}
	return staff, nil
}

// GetStaffByID retrieves a single staff member by their ID.
func (r *GORMSalonRepository) GetStaffByID(id string) (*models.Staff, error) {
	var staff models.Staff
	if err := r.db.First(&staff, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("staff member with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get staff member by ID %s: %w", id, err)
	}
	return &staff, nil
}

// DeleteStaff deletes a staff member by their ID.
func (r *GORMSalonRepository) DeleteStaff(id string) error {
	res := r.db.Delete(&models.Staff{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete staff member: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("staff member with ID %s not found for deletion", id)
	}
	return nil
}

// CreateTreatment creates a new treatment offered by a salon.
func (r *GORMSalonRepository) CreateTreatment(treatment *models.Treatment) error {
	if treatment.ID == "" {
		treatment.ID = uuid.New().String()
	}
	if err := r.db.Create(treatment).Error; err != nil {
		return fmt.Errorf("failed to create treatment: %w", err)
	}
	return nil
}

// GetTreatmentsBySalon retrieves all treatments offered by a salon.
func (r *GORMSalonRepository) GetTreatmentsBySalon(salonID string) ([]models.Treatment, error) {
	var treatments []models.Treatment
	if err := r.db.Where("salon_id = ?", salonID).Find(&treatments).Error; err != nil {
		return nil, fmt.Errorf("failed to get treatments for salon %s: %w", salonID, err)
	}
	return treatments, nil
}

// GetTreatmentByID retrieves a single treatment by its ID.
func (r *GORMSalonRepository) GetTreatmentByID(id string) (*models.Treatment, error) {
	var treatment models.Treatment
	if err := r.db.First(&treatment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("treatment with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get treatment by ID %s: %w", id, err)
	}
	return &treatment, nil
}

// DeleteTreatment deletes a treatment by its ID.
func (r *GORMSalonRepository) DeleteTreatment(id string) error {
	res := r.db.Delete(&models.Treatment{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete treatment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("treatment with ID %s not found for deletion", id)
	}
	return nil
}
