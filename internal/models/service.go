package models

import "time"

// Service is read-only reference data for the pricing page and the
// service label attached to a booking. Price stays a display string
// ("25€"), the shop never computes with it.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Category string `gorm:"size:50;not null" json:"category"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Price    string `gorm:"size:20" json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
