package schedule

import "fmt"

// ===============================
// Time of day
// ===============================

// TimeOfDay is a wall-clock minute within a day, independent of any
// date or timezone. The wire and storage format is "HH:MM".
type TimeOfDay struct {
	Hour   int
	Minute int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var t TimeOfDay
	if _, err := fmt.Sscanf(s, "%d:%d", &t.Hour, &t.Minute); err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
	}
	if len(s) != 5 || s[2] != ':' ||
		t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
	}
	return t, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	if t.Hour != other.Hour {
		return t.Hour < other.Hour
	}
	return t.Minute < other.Minute
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return other.Before(t)
}

// AddMinutes steps forward, rolling minute overflow into hours.
func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	t.Minute += m
	for t.Minute >= 60 {
		t.Hour++
		t.Minute -= 60
	}
	return t
}
