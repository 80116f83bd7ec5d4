package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	domain "github.com/sellbarbers/booking-api/internal/domain/booking"
	"github.com/sellbarbers/booking-api/internal/domain/schedule"
	"github.com/sellbarbers/booking-api/internal/httperr"
	"github.com/sellbarbers/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Barbers
// --------------------------------------------------

func (r *BookingGormRepository) ListBarbers(
	ctx context.Context,
	activeOnly bool,
) ([]models.Barber, error) {

	q := r.db.WithContext(ctx).Order("id ASC")
	if activeOnly {
		q = q.Where("active = ?", true)
	}

	var barbers []models.Barber
	if err := q.Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *BookingGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}
	return &barber, nil
}

func (r *BookingGormRepository) DeleteBarber(
	ctx context.Context,
	id uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barber_id = ?", id).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Barber{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil
	})
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *BookingGormRepository) GetWorkingHours(
	ctx context.Context,
	barberID uint,
) ([]models.WorkingHours, error) {

	var hours []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

// GetScheduleDay resolves one weekday into the total ScheduleDay type.
// A missing row means the day was never configured: treated as off.
func (r *BookingGormRepository) GetScheduleDay(
	ctx context.Context,
	barberID uint,
	day schedule.DayOfWeek,
) (*schedule.ScheduleDay, error) {

	var wh models.WorkingHours
	err := r.db.WithContext(ctx).
		Where("barber_id = ? AND day = ?", barberID, day.String()).
		First(&wh).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &schedule.ScheduleDay{Day: day, Available: false}, nil
	}
	if err != nil {
		return nil, err
	}

	return schedule.NewScheduleDay(wh.Day, wh.Available, wh.StartTime, wh.EndTime, wh.ClosedSlots)
}

// GetScheduleWeek loads every configured day at once. Days without a
// row come back as off.
func (r *BookingGormRepository) GetScheduleWeek(
	ctx context.Context,
	barberID uint,
) (map[schedule.DayOfWeek]schedule.ScheduleDay, error) {

	rows, err := r.GetWorkingHours(ctx, barberID)
	if err != nil {
		return nil, err
	}

	week := make(map[schedule.DayOfWeek]schedule.ScheduleDay, 7)
	for _, day := range schedule.Week() {
		week[day] = schedule.ScheduleDay{Day: day, Available: false}
	}
	for _, wh := range rows {
		sd, err := schedule.NewScheduleDay(wh.Day, wh.Available, wh.StartTime, wh.EndTime, wh.ClosedSlots)
		if err != nil {
			return nil, err
		}
		week[sd.Day] = *sd
	}
	return week, nil
}

func (r *BookingGormRepository) UpdateClosedSlots(
	ctx context.Context,
	barberID uint,
	day schedule.DayOfWeek,
	closed []string,
) error {

	return r.db.WithContext(ctx).
		Model(&models.WorkingHours{}).
		Where("barber_id = ? AND day = ?", barberID, day.String()).
		Update("closed_slots", datatypes.NewJSONSlice(closed)).Error
}

// --------------------------------------------------
// Bookings (availability)
// --------------------------------------------------

func (r *BookingGormRepository) ListBookedTimes(
	ctx context.Context,
	barberID uint,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"barber_id = ? AND date = ? AND status <> ?",
			barberID, date, "cancelled",
		).
		Order("time ASC").
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

func (r *BookingGormRepository) HasActiveBookingAt(
	ctx context.Context,
	barberID uint,
	dates []string,
	timeSlot string,
) (bool, error) {

	if len(dates) == 0 {
		return false, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"barber_id = ? AND time = ? AND status <> ? AND date IN ?",
			barberID, timeSlot, "cancelled", dates,
		).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Bookings (create / state change)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return mapCreateError(err)
	}
	return nil
}

// mapCreateError turns a unique violation on the active-slot index
// into a slot_taken business error: the slot was consumed between the
// availability read and this write.
func mapCreateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return httperr.ErrBusiness(httperr.CodeSlotTaken)
	}
	return err
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).Preload("Barber")

	if filter.BarberID != 0 {
		q = q.Where("barber_id = ?", filter.BarberID)
	}
	if filter.Date != "" {
		q = q.Where("date = ?", filter.Date)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var bookings []models.Booking
	if err := q.
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
