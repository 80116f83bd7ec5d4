package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellbarbers/booking-api/internal/audit"
	domain "github.com/sellbarbers/booking-api/internal/domain/booking"
	"github.com/sellbarbers/booking-api/internal/httperr"
	"github.com/sellbarbers/booking-api/internal/models"
	"github.com/sellbarbers/booking-api/internal/notify"
)

func newSetStatusUC(repo domain.Repository) *SetBookingStatus {
	dispatcher := audit.NewDispatcher(audit.New(nil))
	return NewSetBookingStatus(repo, dispatcher, notify.New())
}

func seedPending(repo *fakeRepo) *models.Booking {
	b := &models.Booking{
		BarberID: 1,
		Name:     "Marco Rossi",
		Phone:    "+39 333 123 4567",
		Date:     "2026-09-01",
		Time:     "10:00",
		Status:   string(domain.StatusPending),
	}
	_ = repo.CreateBooking(context.Background(), b)
	return b
}

func TestConfirmPendingBooking(t *testing.T) {
	repo := newFakeRepo(t)
	seeded := seedPending(repo)
	uc := newSetStatusUC(repo)

	userID := uint(7)
	b, err := uc.Execute(context.Background(), &userID, seeded.ID, domain.StatusConfirmed)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), b.Status)
	require.NotNil(t, b.ConfirmedAt)
	assert.Nil(t, b.CancelledAt)
}

func TestCancelPendingBooking(t *testing.T) {
	repo := newFakeRepo(t)
	seeded := seedPending(repo)
	uc := newSetStatusUC(repo)

	b, err := uc.Execute(context.Background(), nil, seeded.ID, domain.StatusCancelled)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), b.Status)
	require.NotNil(t, b.CancelledAt)
}

func TestSetStatusIsTerminal(t *testing.T) {
	repo := newFakeRepo(t)
	seeded := seedPending(repo)
	uc := newSetStatusUC(repo)

	_, err := uc.Execute(context.Background(), nil, seeded.ID, domain.StatusConfirmed)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), nil, seeded.ID, domain.StatusCancelled)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))

	_, err = uc.Execute(context.Background(), nil, seeded.ID, domain.StatusConfirmed)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
}

func TestSetStatusUnknownBooking(t *testing.T) {
	repo := newFakeRepo(t)
	uc := newSetStatusUC(repo)

	_, err := uc.Execute(context.Background(), nil, 42, domain.StatusConfirmed)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestSetStatusRejectsPendingTarget(t *testing.T) {
	repo := newFakeRepo(t)
	seeded := seedPending(repo)
	uc := newSetStatusUC(repo)

	_, err := uc.Execute(context.Background(), nil, seeded.ID, domain.StatusPending)
	assert.Error(t, err)
}
