package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/sellbarbers/booking-api/internal/httperr"
	"github.com/sellbarbers/booking-api/internal/models"
)

func openDay(day, start, end string) WorkingDayConfig {
	return WorkingDayConfig{Day: day, Available: true, StartTime: start, EndTime: end}
}

func TestBuildRowsKeepsClosuresOnNewGrid(t *testing.T) {
	existing := []models.WorkingHours{{
		BarberID:    1,
		Day:         "Mon",
		Available:   true,
		StartTime:   "09:00",
		EndTime:     "18:00",
		ClosedSlots: datatypes.NewJSONSlice([]string{"10:00", "17:30"}),
	}}

	// The new window ends earlier, so 17:30 falls off the grid.
	rows, err := buildRows(1, []WorkingDayConfig{openDay("Mon", "09:00", "13:00")}, existing)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, []string{"10:00"}, []string(rows[0].ClosedSlots))
}

func TestBuildRowsClosuresDroppedWhenDayTurnedOff(t *testing.T) {
	existing := []models.WorkingHours{{
		BarberID:    1,
		Day:         "Tue",
		Available:   true,
		StartTime:   "09:00",
		EndTime:     "18:00",
		ClosedSlots: datatypes.NewJSONSlice([]string{"11:00"}),
	}}

	rows, err := buildRows(1, []WorkingDayConfig{{Day: "Tue", Available: false}}, existing)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.False(t, rows[0].Available)
	assert.Empty(t, rows[0].StartTime)
	assert.Empty(t, []string(rows[0].ClosedSlots))
}

func TestBuildRowsRejectsDuplicateDay(t *testing.T) {
	_, err := buildRows(1, []WorkingDayConfig{
		openDay("Mon", "09:00", "13:00"),
		openDay("Mon", "14:00", "18:00"),
	}, nil)

	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidationFailed))
}

func TestBuildRowsRejectsInvertedWindow(t *testing.T) {
	_, err := buildRows(1, []WorkingDayConfig{openDay("Wed", "18:00", "09:00")}, nil)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidationFailed))
}

func TestBuildRowsRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name string
		day  WorkingDayConfig
	}{
		{"bad day key", openDay("Monday", "09:00", "18:00")},
		{"bad start", openDay("Thu", "9:00", "18:00")},
		{"bad end", openDay("Thu", "09:00", "25:00")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := buildRows(1, []WorkingDayConfig{tc.day}, nil)
			assert.True(t, httperr.IsBusiness(err, httperr.CodeValidationFailed))
		})
	}
}
