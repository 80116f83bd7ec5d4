package bookingflow

import (
	"context"

	booking "github.com/sellbarbers/booking-api/internal/usecase/booking"
)

// UseCaseSubmitter feeds wizard drafts into the booking pipeline.
type UseCaseSubmitter struct {
	create *booking.CreateBooking
}

func NewUseCaseSubmitter(create *booking.CreateBooking) *UseCaseSubmitter {
	return &UseCaseSubmitter{create: create}
}

var _ Submitter = (*UseCaseSubmitter)(nil)

func (s *UseCaseSubmitter) CreateBooking(ctx context.Context, d Draft) error {
	_, err := s.create.Execute(ctx, booking.CreateBookingInput{
		BarberID: d.BarberID,
		Name:     d.Name,
		Surname:  d.Surname,
		Phone:    d.Phone,
		Date:     d.Date,
		Time:     d.Time,
	})
	return err
}
