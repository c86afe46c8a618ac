package booking

import (
	"econlearn/internal/domain/expert"
)

// WithinAvailability reports whether the slot falls entirely inside one of
// the expert's recurring windows. Only the weekday of the slot's start is
// considered; a slot whose end clock-time precedes its start clock-time
// crosses midnight and can never match a window, which is the intended
// behavior under the no-overnight-windows constraint.
func WithinAvailability(ex *expert.Expert, slot TimeSlot) bool {
	weekday := expert.WeekdayOf(slot.Start())
	start := expert.TimeOfDayFrom(slot.Start())
	end := expert.TimeOfDayFrom(slot.End())

	for _, window := range ex.Availability() {
		if window.Contains(weekday, start, end) {
			return true
		}
	}
	return false
}
