package availability

import (
	"context"

	domain "github.com/sellbarbers/booking-api/internal/domain/booking"
	"github.com/sellbarbers/booking-api/internal/domain/schedule"
	"github.com/sellbarbers/booking-api/internal/httperr"
	"github.com/sellbarbers/booking-api/internal/timezone"
)

type GetAvailableTimeSlots struct {
	repo domain.Repository
}

func NewGetAvailableTimeSlots(repo domain.Repository) *GetAvailableTimeSlots {
	return &GetAvailableTimeSlots{repo: repo}
}

// Execute returns the open slots for one barber on one date, in
// order: the day's window on the default grid, minus slots a
// non-cancelled booking occupies, minus slots staff closed manually.
// A day that is off (or never configured) yields an empty list.
func (uc *GetAvailableTimeSlots) Execute(
	ctx context.Context,
	barberID uint,
	date string,
) ([]string, error) {

	day, err := uc.parseDay(date)
	if err != nil {
		return nil, err
	}

	sd, err := uc.repo.GetScheduleDay(ctx, barberID, day)
	if err != nil {
		return nil, err
	}
	if !sd.Available {
		return []string{}, nil
	}

	booked, err := uc.repo.ListBookedTimes(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	open := []string{}
	for _, slot := range sd.Slots() {
		if _, ok := taken[slot.String()]; ok {
			continue
		}
		open = append(open, slot.String())
	}
	return open, nil
}

func (uc *GetAvailableTimeSlots) parseDay(date string) (schedule.DayOfWeek, error) {
	loc := timezone.Location(timezone.DefaultTimezone)
	t, err := schedule.ParseDate(date, loc)
	if err != nil {
		return 0, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}
	return schedule.DayOf(t), nil
}
