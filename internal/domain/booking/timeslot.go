package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
)

// TimeSlot is a half-open interval [start, end) in naive local time.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start time.Time, durationMinutes int) (TimeSlot, error) {
	if durationMinutes <= 0 {
		return TimeSlot{}, ErrInvalidDuration
	}
	return TimeSlot{
		start: start,
		end:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps uses half-open semantics: back-to-back slots do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return other.start.Before(ts.end) && ts.start.Before(other.end)
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}
