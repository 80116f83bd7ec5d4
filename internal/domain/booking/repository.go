package booking

import (
	"context"

	"github.com/sellbarbers/booking-api/internal/domain/schedule"
	"github.com/sellbarbers/booking-api/internal/models"
)

// ListFilter narrows the staff booking list. Zero values mean "all".
type ListFilter struct {
	BarberID uint
	Date     string
	Status   string
}

type Repository interface {
	// -------- Barbers --------
	ListBarbers(
		ctx context.Context,
		activeOnly bool,
	) ([]models.Barber, error)

	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	// DeleteBarber removes the barber and its weekly schedule. Past
	// bookings keep their rows so history survives the removal.
	DeleteBarber(
		ctx context.Context,
		id uint,
	) error

	// -------- Schedule --------
	GetWorkingHours(
		ctx context.Context,
		barberID uint,
	) ([]models.WorkingHours, error)

	GetScheduleDay(
		ctx context.Context,
		barberID uint,
		day schedule.DayOfWeek,
	) (*schedule.ScheduleDay, error)

	GetScheduleWeek(
		ctx context.Context,
		barberID uint,
	) (map[schedule.DayOfWeek]schedule.ScheduleDay, error)

	UpdateClosedSlots(
		ctx context.Context,
		barberID uint,
		day schedule.DayOfWeek,
		closed []string,
	) error

	// -------- Bookings (availability) --------
	ListBookedTimes(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]string, error)

	// -------- Bookings (create / state change) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookings(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Booking, error)

	HasActiveBookingAt(
		ctx context.Context,
		barberID uint,
		dates []string,
		timeSlot string,
	) (bool, error)
}
