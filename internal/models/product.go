package models

import "gorm.io/gorm"

// Product represents a retail product sold by a salon.
// Price is stored in minor currency units (e.g. cents); DiscountPercent of 0
// means no discount. Stock may never go below zero.
type Product struct {
	ID              string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	SalonID         string `json:"salon_id" gorm:"index;type:varchar(36)" validate:"required,uuid"`
	Name            string `json:"name" validate:"required,min=3,max=100"`
	Description     string `json:"description" validate:"omitempty,max=500"`
	Price           int64  `json:"price" validate:"required,gt=0"`
	DiscountPercent int    `json:"discount_percent" validate:"gte=0,lte=100"`
	Stock           int    `json:"stock" validate:"gte=0"`
	gorm.Model             // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
