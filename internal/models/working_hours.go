package models

import (
	"time"

	"gorm.io/datatypes"
)

// WorkingHours is one (barber, weekday) row of the weekly schedule.
// Day uses the three-letter keys Mon..Sun. When Available is false the
// window fields are ignored. ClosedSlots holds "HH:MM" values staff
// shut manually inside an otherwise open window.
type WorkingHours struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"uniqueIndex:idx_barber_day" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Day string `gorm:"size:3;uniqueIndex:idx_barber_day" json:"day"`

	Available bool   `json:"available"`
	StartTime string `gorm:"size:5" json:"start"`
	EndTime   string `gorm:"size:5" json:"end"`

	ClosedSlots datatypes.JSONSlice[string] `json:"closed_slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
