package booking

import (
	"context"

	"github.com/sellbarbers/booking-api/internal/audit"
	domain "github.com/sellbarbers/booking-api/internal/domain/booking"
)

// ======================================================
// USE CASE: remove a barber
// ======================================================

type RemoveBarber struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveBarber(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *RemoveBarber {
	return &RemoveBarber{
		repo:  repo,
		audit: auditDisp,
	}
}

// Execute deletes the barber and its weekly schedule. Bookings are
// left untouched, so the staff list keeps showing the history of a
// removed barber.
func (uc *RemoveBarber) Execute(
	ctx context.Context,
	userID *uint,
	barberID uint,
) error {

	if err := uc.repo.DeleteBarber(ctx, barberID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   audit.ActionBarberRemoved,
		Entity:   "barber",
		EntityID: &barberID,
	})

	return nil
}
