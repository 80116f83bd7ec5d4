package booking

import (
	"context"

	domain "github.com/sellbarbers/booking-api/internal/domain/booking"
	"github.com/sellbarbers/booking-api/internal/domain/schedule"
	"github.com/sellbarbers/booking-api/internal/dto"
	"github.com/sellbarbers/booking-api/internal/models"
	"github.com/sellbarbers/booking-api/internal/timezone"
)

// Stats are the counters shown on the staff calendar page.
type Stats struct {
	Today     int `json:"today"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
}

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) ([]dto.BookingListDTO, Stats, error) {

	bookings, err := uc.repo.ListBookings(ctx, filter)
	if err != nil {
		return nil, Stats{}, err
	}

	today := timezone.Now().Format(schedule.DateLayout)

	var stats Stats
	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		if b.Date == today && b.Status != string(domain.StatusCancelled) {
			stats.Today++
		}
		switch b.Status {
		case string(domain.StatusPending):
			stats.Pending++
		case string(domain.StatusConfirmed):
			stats.Confirmed++
		}
		out = append(out, toListDTO(b))
	}

	return out, stats, nil
}

func toListDTO(b models.Booking) dto.BookingListDTO {
	return dto.BookingListDTO{
		ID:         b.ID,
		Reference:  b.Reference,
		BarberID:   b.BarberID,
		BarberName: b.Barber.Name,
		Name:       b.Name,
		Phone:      b.Phone,
		Email:      b.Email,
		Service:    b.Service,
		Date:       b.Date,
		Time:       b.Time,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
}
