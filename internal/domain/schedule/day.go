package schedule

import (
	"fmt"
	"time"
)

// ===============================
// Day of week
// ===============================

// DayOfWeek is a closed enum over the seven weekdays. Values persist
// as the three-letter keys Mon..Sun used by the working-hours table.
type DayOfWeek int

const (
	Monday DayOfWeek = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayKeys = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Week lists the days in schedule order, Monday first.
func Week() [7]DayOfWeek {
	return [7]DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

func (d DayOfWeek) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("DayOfWeek(%d)", int(d))
	}
	return dayKeys[d]
}

func ParseDay(key string) (DayOfWeek, error) {
	for i, k := range dayKeys {
		if k == key {
			return DayOfWeek(i), nil
		}
	}
	return 0, fmt.Errorf("unknown day key %q", key)
}

// DayOf maps a calendar date onto the enum. time.Weekday starts the
// week on Sunday, the schedule starts it on Monday.
func DayOf(t time.Time) DayOfWeek {
	wd := int(t.Weekday()) // Sunday = 0
	if wd == 0 {
		return Sunday
	}
	return DayOfWeek(wd - 1)
}
