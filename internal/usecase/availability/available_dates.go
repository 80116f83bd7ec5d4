package availability

import (
	"context"
	"time"

	domain "github.com/sellbarbers/booking-api/internal/domain/booking"
	"github.com/sellbarbers/booking-api/internal/domain/schedule"
)

// DefaultHorizonDays is how far ahead customers may book.
const DefaultHorizonDays = 30

type GetAvailableDates struct {
	repo domain.Repository
}

func NewGetAvailableDates(repo domain.Repository) *GetAvailableDates {
	return &GetAvailableDates{repo: repo}
}

// Execute returns the bookable dates from the day after reference up
// to reference+horizon, in order. A date is bookable when its weekday
// is on in the barber's schedule; today and the past never are.
//
// A day whose time slots are all taken still appears here: date-level
// availability is deliberately coarse, the time step reports "no
// slots" for it.
func (uc *GetAvailableDates) Execute(
	ctx context.Context,
	barberID uint,
	horizonDays int,
	reference time.Time,
) ([]string, error) {

	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	week, err := uc.repo.GetScheduleWeek(ctx, barberID)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, horizonDays)
	for i := 1; i <= horizonDays; i++ {
		date := reference.AddDate(0, 0, i)
		if week[schedule.DayOf(date)].Available {
			dates = append(dates, date.Format(schedule.DateLayout))
		}
	}
	return dates, nil
}
