package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) TimeOfDay {
	t.Helper()
	tod, err := ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func TestGenerateSlotsInclusiveEnd(t *testing.T) {
	slots := GenerateSlots(mustTime(t, "09:00"), mustTime(t, "10:00"), 30)

	var got []string
	for _, s := range slots {
		got = append(got, s.String())
	}
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, got)
}

func TestGenerateSlotsSingleSlotWindow(t *testing.T) {
	slots := GenerateSlots(mustTime(t, "09:00"), mustTime(t, "09:00"), 30)
	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0].String())
}

func TestGenerateSlotsStartAfterEnd(t *testing.T) {
	assert.Empty(t, GenerateSlots(mustTime(t, "18:00"), mustTime(t, "09:00"), 30))
}

func TestGenerateSlotsInvalidInterval(t *testing.T) {
	assert.Empty(t, GenerateSlots(mustTime(t, "09:00"), mustTime(t, "10:00"), 0))
	assert.Empty(t, GenerateSlots(mustTime(t, "09:00"), mustTime(t, "10:00"), -30))
}

func TestGenerateSlotsMonotonicAndOnGrid(t *testing.T) {
	slots := GenerateSlots(mustTime(t, "08:00"), mustTime(t, "19:00"), 30)
	require.NotEmpty(t, slots)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Before(slots[i]))
	}
	for _, s := range slots {
		assert.Contains(t, []int{0, 30}, s.Minute)
	}
}

func TestGenerateSlotsMinuteWrap(t *testing.T) {
	slots := GenerateSlots(mustTime(t, "09:45"), mustTime(t, "11:00"), 30)

	var got []string
	for _, s := range slots {
		got = append(got, s.String())
	}
	assert.Equal(t, []string{"09:45", "10:15", "10:45"}, got)
}

func TestScheduleDaySlotsSkipsClosed(t *testing.T) {
	sd, err := NewScheduleDay("Mon", true, "09:00", "11:00", []string{"10:00"})
	require.NoError(t, err)

	var got []string
	for _, s := range sd.Slots() {
		got = append(got, s.String())
	}
	assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00"}, got)
}

func TestScheduleDayOffHasNoSlots(t *testing.T) {
	sd, err := NewScheduleDay("Sun", false, "", "", nil)
	require.NoError(t, err)

	assert.False(t, sd.Available)
	assert.Empty(t, sd.Slots())
}

func TestNewScheduleDayRejectsBadWindow(t *testing.T) {
	_, err := NewScheduleDay("Mon", true, "9:00", "18:00", nil)
	assert.Error(t, err)

	_, err = NewScheduleDay("Xyz", true, "09:00", "18:00", nil)
	assert.Error(t, err)
}

func TestNewScheduleDayDropsUnparsableClosures(t *testing.T) {
	sd, err := NewScheduleDay("Tue", true, "09:00", "12:00", []string{"10:00", "bogus"})
	require.NoError(t, err)

	assert.True(t, sd.Closed(mustTime(t, "10:00")))
	assert.Len(t, sd.ClosedSlots, 1)
}
