package schedule

import "time"

// DefaultSlotMinutes is the booking grid used across the whole shop.
const DefaultSlotMinutes = 30

// DateLayout is the storage format for calendar dates.
const DateLayout = "2006-01-02"

// ScheduleDay is one day of a barber's weekly availability, with the
// full set of fields resolved: no optional pieces bolted on later.
type ScheduleDay struct {
	Day         DayOfWeek
	Available   bool
	Start       TimeOfDay
	End         TimeOfDay
	ClosedSlots map[TimeOfDay]struct{}
}

// Closed reports whether staff shut a specific slot regardless of the
// working-hour window.
func (d ScheduleDay) Closed(t TimeOfDay) bool {
	_, ok := d.ClosedSlots[t]
	return ok
}

// NewScheduleDay builds the total ScheduleDay type from stored row
// values. Window fields are only parsed when the day is on; closed
// slots that fail to parse are dropped.
func NewScheduleDay(dayKey string, available bool, start, end string, closed []string) (*ScheduleDay, error) {
	day, err := ParseDay(dayKey)
	if err != nil {
		return nil, err
	}

	out := ScheduleDay{Day: day, Available: available}
	if !available {
		return &out, nil
	}

	if out.Start, err = ParseTimeOfDay(start); err != nil {
		return nil, err
	}
	if out.End, err = ParseTimeOfDay(end); err != nil {
		return nil, err
	}

	out.ClosedSlots = make(map[TimeOfDay]struct{}, len(closed))
	for _, raw := range closed {
		if t, err := ParseTimeOfDay(raw); err == nil {
			out.ClosedSlots[t] = struct{}{}
		}
	}
	return &out, nil
}

// GenerateSlots produces every time of day from start to end inclusive,
// stepping by interval minutes. The end boundary is included when it
// falls exactly on a step. start after end yields no slots.
func GenerateSlots(start, end TimeOfDay, intervalMinutes int) []TimeOfDay {
	if intervalMinutes <= 0 || start.After(end) {
		return nil
	}

	var slots []TimeOfDay
	for cur := start; !cur.After(end); cur = cur.AddMinutes(intervalMinutes) {
		slots = append(slots, cur)
	}
	return slots
}

// Slots expands the day's window on the default grid, minus closed
// slots. Empty when the day is off.
func (d ScheduleDay) Slots() []TimeOfDay {
	if !d.Available {
		return nil
	}

	all := GenerateSlots(d.Start, d.End, DefaultSlotMinutes)
	open := make([]TimeOfDay, 0, len(all))
	for _, s := range all {
		if !d.Closed(s) {
			open = append(open, s)
		}
	}
	return open
}

// ParseDate reads a stored calendar date in the given location.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}
