package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellbarbers/booking-api/internal/audit"
	"github.com/sellbarbers/booking-api/internal/httperr"
)

func newToggleUC(repo *fakeRepo) *ToggleClosedSlot {
	return NewToggleClosedSlot(repo, audit.NewDispatcher(audit.New(nil)))
}

func TestCloseSlot(t *testing.T) {
	repo := newFakeRepo(t)
	uc := newToggleUC(repo)

	res, err := uc.Execute(context.Background(), nil, 1, "Mon", "10:00")
	require.NoError(t, err)

	assert.True(t, res.Applied)
	assert.True(t, res.Closed)
	assert.Equal(t, []string{"10:00"}, res.ClosedSlots)
}

func TestReopenSlot(t *testing.T) {
	repo := newFakeRepo(t)
	uc := newToggleUC(repo)

	_, err := uc.Execute(context.Background(), nil, 1, "Mon", "10:00")
	require.NoError(t, err)

	res, err := uc.Execute(context.Background(), nil, 1, "Mon", "10:00")
	require.NoError(t, err)

	assert.True(t, res.Applied)
	assert.False(t, res.Closed)
	assert.Empty(t, res.ClosedSlots)
}

func TestCloseSlotRefusedWhenBooked(t *testing.T) {
	repo := newFakeRepo(t)
	repo.activeAt = true
	uc := newToggleUC(repo)

	res, err := uc.Execute(context.Background(), nil, 1, "Mon", "10:00")
	require.NoError(t, err)

	// The toggle is a quiet no-op, not an error.
	assert.False(t, res.Applied)
	assert.False(t, res.Closed)
	assert.Equal(t, httperr.CodeSlotBooked, res.Reason)
	assert.Empty(t, res.ClosedSlots)
	assert.Empty(t, repo.closedUpdates)
}

func TestReopenAllowedEvenWhenBooked(t *testing.T) {
	repo := newFakeRepo(t)
	uc := newToggleUC(repo)

	_, err := uc.Execute(context.Background(), nil, 1, "Mon", "10:00")
	require.NoError(t, err)

	repo.activeAt = true

	res, err := uc.Execute(context.Background(), nil, 1, "Mon", "10:00")
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.False(t, res.Closed)
}

func TestToggleRejectsOffGridSlot(t *testing.T) {
	repo := newFakeRepo(t)
	uc := newToggleUC(repo)

	_, err := uc.Execute(context.Background(), nil, 1, "Mon", "10:15")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidationFailed))

	_, err = uc.Execute(context.Background(), nil, 1, "Mon", "23:30")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidationFailed))
}

func TestToggleRejectsOffDay(t *testing.T) {
	repo := newFakeRepo(t)

	sd := repo.week[0]
	sd.Available = false
	repo.week[0] = sd

	uc := newToggleUC(repo)

	_, err := uc.Execute(context.Background(), nil, 1, "Mon", "10:00")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidationFailed))
}

func TestToggleRejectsBadInput(t *testing.T) {
	repo := newFakeRepo(t)
	uc := newToggleUC(repo)

	_, err := uc.Execute(context.Background(), nil, 1, "Monday", "10:00")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidationFailed))

	_, err = uc.Execute(context.Background(), nil, 1, "Mon", "10")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidationFailed))
}
