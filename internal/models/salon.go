package models

import "gorm.io/gorm"

// Salon represents a beauty salon that sells products and offers treatments.
type Salon struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string `json:"name" gorm:"type:varchar(120)" validate:"required,min=2,max=120"`
	Address     string `json:"address" validate:"required,max=255"`
	Phone       string `json:"phone" gorm:"type:varchar(30)" validate:"omitempty,max=30"`
	Description string `json:"description" validate:"omitempty,max=500"`
	gorm.Model
}

// Staff represents an employee of a salon who can be booked for appointments.
type Staff struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	SalonID   string `json:"salon_id" gorm:"index;type:varchar(36)" validate:"required,uuid"`
	Name      string `json:"name" gorm:"type:varchar(120)" validate:"required,min=2,max=120"`
	Specialty string `json:"specialty" gorm:"type:varchar(120)" validate:"omitempty,max=120"`
	gorm.Model
}

// Treatment represents a bookable service offered by a salon, e.g. a haircut.
// Price is in minor currency units; DurationMinutes drives booking slot length.
type Treatment struct {
	ID              string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	SalonID         string `json:"salon_id" gorm:"index;type:varchar(36)" validate:"required,uuid"`
	Name            string `json:"name" gorm:"type:varchar(120)" validate:"required,min=2,max=120"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0,lte=480"`
	Price           int64  `json:"price" validate:"required,gt=0"`
	gorm.Model
}
