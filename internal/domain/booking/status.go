package booking

import "github.com/sellbarbers/booking-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

// Lifecycle: pending → confirmed, pending → cancelled. Confirmed and
// cancelled are terminal, a booking is never reopened.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return st, nil
	}
	return "", httperr.ErrBusiness(httperr.CodeInvalidStatus)
}

// ===============================
// Validations
// ===============================

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// Blocks a slot from being offered. Cancelled bookings release their
// slot on the next availability read.
func (s Status) OccupiesSlot() bool {
	return s != StatusCancelled
}

// InitialStatus is the only status the public flow may create with.
func InitialStatus() Status {
	return StatusPending
}
