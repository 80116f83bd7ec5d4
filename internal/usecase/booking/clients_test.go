package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/sellbarbers/booking-api/internal/domain/booking"
	"github.com/sellbarbers/booking-api/internal/models"
)

func seedBooking(repo *fakeRepo, name, phone, service, date string) {
	_ = repo.CreateBooking(context.Background(), &models.Booking{
		BarberID: 1,
		Name:     name,
		Phone:    phone,
		Service:  service,
		Date:     date,
		Time:     "10:00",
		Status:   string(domain.StatusPending),
	})
}

func TestClientRosterGroupsByNameAndPhone(t *testing.T) {
	repo := newFakeRepo(t)
	seedBooking(repo, "Marco Rossi", "+39 333 123 4567", "Taglio", "2026-09-01")
	seedBooking(repo, "Marco Rossi", "+39 333 123 4567", "Barba", "2026-09-10")
	seedBooking(repo, "Luca Bianchi", "+39 333 765 4321", "Taglio", "2026-09-05")

	uc := NewClientRoster(repo)

	clients, err := uc.Execute(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, clients, 2)

	// Most recent booking first.
	assert.Equal(t, "Marco Rossi", clients[0].Name)
	assert.Equal(t, 2, clients[0].TotalBookings)
	assert.Equal(t, "2026-09-10", clients[0].LastBooking)
	assert.Equal(t, []string{"Barba", "Taglio"}, clients[0].Services)

	assert.Equal(t, "Luca Bianchi", clients[1].Name)
}

func TestClientRosterQueryFilter(t *testing.T) {
	repo := newFakeRepo(t)
	seedBooking(repo, "Marco Rossi", "+39 333 123 4567", "Taglio", "2026-09-01")
	seedBooking(repo, "Luca Bianchi", "+39 333 765 4321", "Taglio", "2026-09-05")

	uc := NewClientRoster(repo)

	clients, err := uc.Execute(context.Background(), "rossi")
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Marco Rossi", clients[0].Name)

	clients, err = uc.Execute(context.Background(), "765")
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Luca Bianchi", clients[0].Name)
}

func TestClientRosterSamePhoneDifferentName(t *testing.T) {
	repo := newFakeRepo(t)
	seedBooking(repo, "Marco Rossi", "+39 333 123 4567", "Taglio", "2026-09-01")
	seedBooking(repo, "M. Rossi", "+39 333 123 4567", "Taglio", "2026-09-02")

	uc := NewClientRoster(repo)

	clients, err := uc.Execute(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, clients, 2)
}
