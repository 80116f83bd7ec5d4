package booking

import (
	"context"
	"sort"
	"time"

	"github.com/sellbarbers/booking-api/internal/audit"
	domain "github.com/sellbarbers/booking-api/internal/domain/booking"
	"github.com/sellbarbers/booking-api/internal/domain/schedule"
	"github.com/sellbarbers/booking-api/internal/httperr"
	"github.com/sellbarbers/booking-api/internal/timezone"
	"github.com/sellbarbers/booking-api/internal/usecase/availability"
)

// ======================================================
// USE CASE
// ======================================================

// ToggleClosedSlot flips one (barber, weekday, time) closure on the
// schedule. Closing is refused as a no-op when any upcoming date of
// that weekday holds a non-cancelled booking at that time; reopening
// is always allowed.
type ToggleClosedSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewToggleClosedSlot(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *ToggleClosedSlot {
	return &ToggleClosedSlot{repo: repo, audit: auditDisp}
}

type ToggleResult struct {
	Applied     bool     `json:"applied"`
	Closed      bool     `json:"closed"`
	ClosedSlots []string `json:"closed_slots"`
	Reason      string   `json:"reason,omitempty"`
}

func (uc *ToggleClosedSlot) Execute(
	ctx context.Context,
	userID *uint,
	barberID uint,
	dayKey string,
	slot string,
) (*ToggleResult, error) {

	day, err := schedule.ParseDay(dayKey)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidationFailed)
	}
	slotTime, err := schedule.ParseTimeOfDay(slot)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidationFailed)
	}

	sd, err := uc.repo.GetScheduleDay(ctx, barberID, day)
	if err != nil {
		return nil, err
	}
	if !sd.Available {
		return nil, httperr.ErrBusiness(httperr.CodeValidationFailed)
	}

	// The slot must exist on the day's grid at all.
	onGrid := false
	for _, s := range schedule.GenerateSlots(sd.Start, sd.End, schedule.DefaultSlotMinutes) {
		if s == slotTime {
			onGrid = true
			break
		}
	}
	if !onGrid {
		return nil, httperr.ErrBusiness(httperr.CodeValidationFailed)
	}

	if sd.Closed(slotTime) {
		return uc.reopen(ctx, userID, barberID, sd, slotTime)
	}
	return uc.close(ctx, userID, barberID, sd, slotTime)
}

func (uc *ToggleClosedSlot) close(
	ctx context.Context,
	userID *uint,
	barberID uint,
	sd *schedule.ScheduleDay,
	slotTime schedule.TimeOfDay,
) (*ToggleResult, error) {

	booked, err := uc.repo.HasActiveBookingAt(
		ctx,
		barberID,
		upcomingDates(sd.Day),
		slotTime.String(),
	)
	if err != nil {
		return nil, err
	}
	if booked {
		// Never shadow a live booking; the toggle quietly does
		// nothing.
		return &ToggleResult{
			Applied:     false,
			Closed:      false,
			ClosedSlots: closedList(sd),
			Reason:      httperr.CodeSlotBooked,
		}, nil
	}

	sd.ClosedSlots[slotTime] = struct{}{}
	closed := closedList(sd)

	if err := uc.repo.UpdateClosedSlots(ctx, barberID, sd.Day, closed); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   audit.ActionSlotClosed,
		Entity:   "working_hours",
		Metadata: map[string]any{"barber_id": barberID, "day": sd.Day.String(), "time": slotTime.String()},
	})

	return &ToggleResult{Applied: true, Closed: true, ClosedSlots: closed}, nil
}

func (uc *ToggleClosedSlot) reopen(
	ctx context.Context,
	userID *uint,
	barberID uint,
	sd *schedule.ScheduleDay,
	slotTime schedule.TimeOfDay,
) (*ToggleResult, error) {

	delete(sd.ClosedSlots, slotTime)
	closed := closedList(sd)

	if err := uc.repo.UpdateClosedSlots(ctx, barberID, sd.Day, closed); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   audit.ActionSlotReopened,
		Entity:   "working_hours",
		Metadata: map[string]any{"barber_id": barberID, "day": sd.Day.String(), "time": slotTime.String()},
	})

	return &ToggleResult{Applied: true, Closed: false, ClosedSlots: closed}, nil
}

func closedList(sd *schedule.ScheduleDay) []string {
	out := make([]string, 0, len(sd.ClosedSlots))
	for t := range sd.ClosedSlots {
		out = append(out, t.String())
	}
	sort.Strings(out)
	return out
}

// upcomingDates lists every date with the given weekday inside the
// booking horizon, starting tomorrow.
func upcomingDates(day schedule.DayOfWeek) []string {
	loc := timezone.Location(timezone.DefaultTimezone)
	now := timezone.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	var dates []string
	for i := 1; i <= availability.DefaultHorizonDays; i++ {
		d := today.AddDate(0, 0, i)
		if schedule.DayOf(d) == day {
			dates = append(dates, d.Format(schedule.DateLayout))
		}
	}
	return dates
}
