package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/sellbarbers/booking-api/internal/models"
)

// Actions recorded by the console.
const (
	ActionBookingCreated   = "booking_created"
	ActionBookingConfirmed = "booking_confirmed"
	ActionBookingCancelled = "booking_cancelled"
	ActionHoursUpdated     = "working_hours_updated"
	ActionSlotClosed       = "slot_closed"
	ActionSlotReopened     = "slot_reopened"
	ActionBarberRemoved    = "barber_removed"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	userID *uint,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	if l.db == nil {
		return nil
	}

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&entry).Error
}
