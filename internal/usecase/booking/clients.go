package booking

import (
	"context"
	"sort"
	"strings"

	domain "github.com/sellbarbers/booking-api/internal/domain/booking"
	"github.com/sellbarbers/booking-api/internal/dto"
)

// The shop keeps no clients table: the roster is derived from booking
// history, keyed on (name, phone).
type ClientRoster struct {
	repo domain.Repository
}

func NewClientRoster(repo domain.Repository) *ClientRoster {
	return &ClientRoster{repo: repo}
}

func (uc *ClientRoster) Execute(
	ctx context.Context,
	query string,
) ([]dto.ClientDTO, error) {

	bookings, err := uc.repo.ListBookings(ctx, domain.ListFilter{})
	if err != nil {
		return nil, err
	}

	type entry struct {
		dto.ClientDTO
		services map[string]struct{}
	}

	byKey := make(map[string]*entry)
	for _, b := range bookings {
		key := strings.ToLower(b.Name) + "_" + b.Phone

		e, ok := byKey[key]
		if !ok {
			e = &entry{
				ClientDTO: dto.ClientDTO{
					Name:  b.Name,
					Phone: b.Phone,
					Email: b.Email,
				},
				services: make(map[string]struct{}),
			}
			byKey[key] = e
		}

		e.TotalBookings++
		if b.Date > e.LastBooking {
			e.LastBooking = b.Date
		}
		e.services[b.Service] = struct{}{}
	}

	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]dto.ClientDTO, 0, len(byKey))
	for _, e := range byKey {
		if query != "" &&
			!strings.Contains(strings.ToLower(e.Name), query) &&
			!strings.Contains(e.Phone, query) {
			continue
		}

		for s := range e.services {
			e.Services = append(e.Services, s)
		}
		sort.Strings(e.Services)
		out = append(out, e.ClientDTO)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].LastBooking != out[j].LastBooking {
			return out[i].LastBooking > out[j].LastBooking
		}
		return out[i].Name < out[j].Name
	})

	return out, nil
}
