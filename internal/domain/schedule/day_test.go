package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayRoundTrip(t *testing.T) {
	for _, d := range Week() {
		parsed, err := ParseDay(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}
}

func TestParseDayUnknownKey(t *testing.T) {
	_, err := ParseDay("Monday")
	assert.Error(t, err)
}

func TestDayOfStartsWeekOnMonday(t *testing.T) {
	// 2026-08-31 is a Monday, 2026-09-06 a Sunday.
	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	for i, want := range Week() {
		assert.Equal(t, want, DayOf(monday.AddDate(0, 0, i)))
	}
}
