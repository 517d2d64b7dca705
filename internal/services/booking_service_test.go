package services_test

import (
	"testing"
	"time"

	"salonstore/internal/models"
	"salonstore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBookingRepository is a mock implementation of repositories.BookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(booking *models.Booking) error {
	args := m.Called(booking)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(id string) (*models.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByUser(userID string) ([]models.Booking, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(id string, status models.BookingStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

// MockSalonRepository is a mock implementation of repositories.SalonRepository
type MockSalonRepository struct {
	mock.Mock
}

func (m *MockSalonRepository) CreateSalon(salon *models.Salon) error {
	args := m.Called(salon)
	return args.Error(0)
}

func (m *MockSalonRepository) GetSalons() ([]models.Salon, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Salon), args.Error(1)
}

func (m *MockSalonRepository) GetSalonByID(id string) (*models.Salon, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Salon), args.Error(1)
}

func (m *MockSalonRepository) UpdateSalon(salon *models.Salon) error {
	args := m.Called(salon)
	return args.Error(0)
}

func (m *MockSalonRepository) DeleteSalon(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockSalonRepository) CreateStaff(staff *models.Staff) error {
	args := m.Called(staff)
	return args.Error(0)
}

func (m *MockSalonRepository) GetStaffBySalon(salonID string) ([]models.Staff, error) {
	args := m.Called(salonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Staff), args.Error(1)
}

func (m *MockSalonRepository) GetStaffByID(id string) (*models.Staff, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Staff), args.Error(1)
}

func (m *MockSalonRepository) DeleteStaff(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockSalonRepository) CreateTreatment(treatment *models.Treatment) error {
	args := m.Called(treatment)
	return args.Error(0)
}

func (m *MockSalonRepository) GetTreatmentsBySalon(salonID string) ([]models.Treatment, error) {
	args := m.Called(salonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Treatment), args.Error(1)
}

func (m *MockSalonRepository) GetTreatmentByID(id string) (*models.Treatment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Treatment), args.Error(1)
}

func (m *MockSalonRepository) DeleteTreatment(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestBookingService_CreateBooking(t *testing.T) {
	mockBookingRepo := new(MockBookingRepository)
	mockSalonRepo := new(MockSalonRepository)
	service := services.NewBookingService(mockBookingRepo, mockSalonRepo, nil)

	treatment := &models.Treatment{ID: "t1", SalonID: "salon-1", Name: "Balinese Massage", DurationMinutes: 90, Price: 35000}
	staff := &models.Staff{ID: "st1", SalonID: "salon-1", Name: "Maya", Specialty: "Massage"}
	startsAt := time.Now().Add(48 * time.Hour).Truncate(time.Minute)

	mockSalonRepo.On("GetTreatmentByID", "t1").Return(treatment, nil).Once()
	mockSalonRepo.On("GetStaffByID", "st1").Return(staff, nil).Once()
	mockBookingRepo.On("Create", mock.AnythingOfType("*models.Booking")).Return(nil).Once()

	booking, err := service.CreateBooking("user-1", services.BookingRequest{
		SalonID:     "salon-1",
		StaffID:     "st1",
		TreatmentID: "t1",
		StartsAt:    startsAt,
	})

	assert.NoError(t, err)
	assert.Equal(t, "user-1", booking.UserID)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	// EndsAt is derived from the treatment duration.
	assert.Equal(t, startsAt.Add(90*time.Minute), booking.EndsAt)
	mockBookingRepo.AssertExpectations(t)
	mockSalonRepo.AssertExpectations(t)
}

func TestBookingService_CreateBooking_SalonMismatch(t *testing.T) {
	mockBookingRepo := new(MockBookingRepository)
	mockSalonRepo := new(MockSalonRepository)
	service := services.NewBookingService(mockBookingRepo, mockSalonRepo, nil)

	treatment := &models.Treatment{ID: "t1", SalonID: "salon-2", Name: "Balinese Massage", DurationMinutes: 90}
	mockSalonRepo.On("GetTreatmentByID", "t1").Return(treatment, nil).Once()

	_, err := service.CreateBooking("user-1", services.BookingRequest{
		SalonID:     "salon-1",
		StaffID:     "st1",
		TreatmentID: "t1",
		StartsAt:    time.Now().Add(24 * time.Hour),
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not offered by salon")
	mockBookingRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestBookingService_CreateBooking_PastStart(t *testing.T) {
	mockBookingRepo := new(MockBookingRepository)
	mockSalonRepo := new(MockSalonRepository)
	service := services.NewBookingService(mockBookingRepo, mockSalonRepo, nil)

	treatment := &models.Treatment{ID: "t1", SalonID: "salon-1", DurationMinutes: 30}
	staff := &models.Staff{ID: "st1", SalonID: "salon-1"}
	mockSalonRepo.On("GetTreatmentByID", "t1").Return(treatment, nil).Once()
	mockSalonRepo.On("GetStaffByID", "st1").Return(staff, nil).Once()

	_, err := service.CreateBooking("user-1", services.BookingRequest{
		SalonID:     "salon-1",
		StaffID:     "st1",
		TreatmentID: "t1",
		StartsAt:    time.Now().Add(-time.Hour),
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be in the future")
	mockBookingRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestBookingService_CreateBooking_SlotTaken(t *testing.T) {
	mockBookingRepo := new(MockBookingRepository)
	mockSalonRepo := new(MockSalonRepository)
	service := services.NewBookingService(mockBookingRepo, mockSalonRepo, nil)

	treatment := &models.Treatment{ID: "t1", SalonID: "salon-1", DurationMinutes: 60}
	staff := &models.Staff{ID: "st1", SalonID: "salon-1"}
	mockSalonRepo.On("GetTreatmentByID", "t1").Return(treatment, nil).Once()
	mockSalonRepo.On("GetStaffByID", "st1").Return(staff, nil).Once()
	mockBookingRepo.On("Create", mock.AnythingOfType("*models.Booking")).Return(models.ErrSlotTaken).Once()

	_, err := service.CreateBooking("user-1", services.BookingRequest{
		SalonID:     "salon-1",
		StaffID:     "st1",
		TreatmentID: "t1",
		StartsAt:    time.Now().Add(24 * time.Hour),
	})
	assert.ErrorIs(t, err, models.ErrSlotTaken)
	mockBookingRepo.AssertExpectations(t)
}

func TestBookingService_UpdateBookingStatus(t *testing.T) {
	mockBookingRepo := new(MockBookingRepository)
	mockSalonRepo := new(MockSalonRepository)
	service := services.NewBookingService(mockBookingRepo, mockSalonRepo, nil)

	err := service.UpdateBookingStatus("b1", models.BookingStatus("ghosted"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid booking status")
	mockBookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)

	mockBookingRepo.On("UpdateStatus", "b1", models.BookingStatusConfirmed).Return(nil).Once()
	assert.NoError(t, service.UpdateBookingStatus("b1", models.BookingStatusConfirmed))
	mockBookingRepo.AssertExpectations(t)
}

func TestBookingService_CancelBooking(t *testing.T) {
	mockBookingRepo := new(MockBookingRepository)
	mockSalonRepo := new(MockSalonRepository)
	service := services.NewBookingService(mockBookingRepo, mockSalonRepo, nil)

	mockBookingRepo.On("UpdateStatus", "b1", models.BookingStatusCancelled).Return(nil).Once()
	assert.NoError(t, service.CancelBooking("b1"))

	mockBookingRepo.On("UpdateStatus", "b404", models.BookingStatusCancelled).Return(models.ErrBookingNotFound).Once()
	assert.ErrorIs(t, service.CancelBooking("b404"), models.ErrBookingNotFound)
	mockBookingRepo.AssertExpectations(t)
}
