package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sellbarbers/booking-api/internal/audit"
	domain "github.com/sellbarbers/booking-api/internal/domain/booking"
	"github.com/sellbarbers/booking-api/internal/domain/schedule"
	"github.com/sellbarbers/booking-api/internal/httperr"
	"github.com/sellbarbers/booking-api/internal/models"
	"github.com/sellbarbers/booking-api/internal/notify"
	"github.com/sellbarbers/booking-api/internal/timezone"
	"github.com/sellbarbers/booking-api/internal/usecase/availability"
	"github.com/sellbarbers/booking-api/internal/validators"
)

// DefaultService is the label attached when the customer picked none.
const DefaultService = "Taglio + Barba"

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BarberID uint

	Name    string
	Surname string
	Phone   string
	Email   string

	Service string
	Date    string
	Time    string
	Notes   string
}

// SlotLocker serializes the check+insert window for one slot.
type SlotLocker interface {
	Acquire(ctx context.Context, barberID uint, date, timeSlot string) (func(), error)
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	lock     SlotLocker
	audit    *audit.Dispatcher
	notifier *notify.Notifier
}

func NewCreateBooking(
	repo domain.Repository,
	lock SlotLocker,
	auditDisp *audit.Dispatcher,
	notifier *notify.Notifier,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		lock:     lock,
		audit:    auditDisp,
		notifier: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	slot, err := uc.validate(in)
	if err != nil {
		return nil, err
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if !barber.Active {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	// The requested slot must be one the shop currently offers:
	// inside the day's window on the grid and not closed by staff.
	// A slot lost to another booking is the separate, retryable
	// slot_taken case.
	day := schedule.DayOf(slot)
	sd, err := uc.repo.GetScheduleDay(ctx, in.BarberID, day)
	if err != nil {
		return nil, err
	}

	offered := false
	for _, s := range sd.Slots() {
		if s.String() == in.Time {
			offered = true
			break
		}
	}
	if !offered {
		return nil, httperr.ErrBusiness(httperr.CodeValidationFailed)
	}

	booked, err := uc.repo.ListBookedTimes(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}
	for _, t := range booked {
		if t == in.Time {
			return nil, httperr.ErrBusiness(httperr.CodeSlotTaken)
		}
	}

	release, err := uc.lock.Acquire(ctx, in.BarberID, in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	defer release()

	service := strings.TrimSpace(in.Service)
	if service == "" {
		service = DefaultService
	}

	b := &models.Booking{
		Reference: uuid.NewString(),
		BarberID:  in.BarberID,
		Name:      strings.TrimSpace(in.Name) + " " + strings.TrimSpace(in.Surname),
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
		Service:   service,
		Date:      in.Date,
		Time:      in.Time,
		Status:    string(domain.InitialStatus()),
		Notes:     in.Notes,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionBookingCreated,
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"barber_id": b.BarberID, "date": b.Date, "time": b.Time},
	})

	uc.notifier.Send(notify.Message{
		Kind: notify.KindSMS,
		To:   b.Phone,
		Body: fmt.Sprintf(
			"Richiesta ricevuta: %s con %s il %s alle %s. Ti confermeremo a breve.",
			b.Service, barber.Name, b.Date, b.Time,
		),
	})

	return b, nil
}

// validate checks the contact fields and the date/time shape, and
// rejects dates outside the booking horizon. Returns the parsed slot
// start in the shop timezone.
func (uc *CreateBooking) validate(in CreateBookingInput) (time.Time, error) {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Surname) == "" ||
		strings.TrimSpace(in.Phone) == "" {
		return time.Time{}, httperr.ErrBusiness(httperr.CodeValidationFailed)
	}
	if !validators.IsPhoneValid(strings.TrimSpace(in.Phone)) {
		return time.Time{}, httperr.ErrBusiness(httperr.CodeValidationFailed)
	}
	if _, err := schedule.ParseTimeOfDay(in.Time); err != nil {
		return time.Time{}, httperr.ErrBusiness(httperr.CodeValidationFailed)
	}

	loc := timezone.Location(timezone.DefaultTimezone)
	slot, err := schedule.ParseDate(in.Date, loc)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness(httperr.CodeValidationFailed)
	}

	now := timezone.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if !slot.After(today) {
		return time.Time{}, httperr.ErrBusiness(httperr.CodeValidationFailed)
	}
	if slot.After(today.AddDate(0, 0, availability.DefaultHorizonDays)) {
		return time.Time{}, httperr.ErrBusiness(httperr.CodeValidationFailed)
	}

	return slot, nil
}
