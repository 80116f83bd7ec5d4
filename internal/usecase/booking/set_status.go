package booking

import (
	"context"
	"fmt"

	"github.com/sellbarbers/booking-api/internal/audit"
	domain "github.com/sellbarbers/booking-api/internal/domain/booking"
	"github.com/sellbarbers/booking-api/internal/httperr"
	"github.com/sellbarbers/booking-api/internal/models"
	"github.com/sellbarbers/booking-api/internal/notify"
	"github.com/sellbarbers/booking-api/internal/timezone"
)

type SetBookingStatus struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier *notify.Notifier
}

func NewSetBookingStatus(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	notifier *notify.Notifier,
) *SetBookingStatus {
	return &SetBookingStatus{
		repo:     repo,
		audit:    auditDisp,
		notifier: notifier,
	}
}

// Execute moves a pending booking to confirmed or cancelled. The
// status field is the only side effect: a cancelled booking's slot is
// re-offered implicitly on the next availability read.
func (uc *SetBookingStatus) Execute(
	ctx context.Context,
	userID *uint,
	bookingID uint,
	target domain.Status,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	now := timezone.Now()

	var action, word string
	switch target {
	case domain.StatusConfirmed:
		if err := domain.Confirm(b, now); err != nil {
			return nil, err
		}
		action, word = audit.ActionBookingConfirmed, "confermata"
	case domain.StatusCancelled:
		if err := domain.Cancel(b, now); err != nil {
			return nil, err
		}
		action, word = audit.ActionBookingCancelled, "annullata"
	default:
		return nil, httperr.ErrBusiness(httperr.CodeInvalidStatus)
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   action,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	uc.notifier.Send(notify.Message{
		Kind: notify.KindSMS,
		To:   b.Phone,
		Body: fmt.Sprintf(
			"La tua prenotazione del %s alle %s è stata %s.",
			b.Date, b.Time, word,
		),
	})

	return b, nil
}
