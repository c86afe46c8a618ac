package expert

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidWeekday   = errors.New("invalid weekday")
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidWindow    = errors.New("window start must be before window end")
)

// Weekday is a normalized (trimmed, lowercase) English weekday name.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

func NewWeekday(value string) (Weekday, error) {
	w := Weekday(strings.ToLower(strings.TrimSpace(value)))
	switch w {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return w, nil
	default:
		return "", ErrInvalidWeekday
	}
}

// WeekdayOf maps a calendar timestamp to its normalized weekday name.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(strings.ToLower(t.Weekday().String()))
}

func (w Weekday) String() string {
	return string(w)
}

// TimeOfDay is a clock time without a date, second precision.
type TimeOfDay struct {
	seconds int // seconds since midnight
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{seconds: (hour*60 + minute) * 60}, nil
}

// MustTimeOfDay panics on invalid input and exists for static seed data only.
func MustTimeOfDay(hour, minute int) TimeOfDay {
	tod, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return tod
}

// TimeOfDayFrom extracts the clock-time portion of a timestamp.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay{seconds: t.Hour()*3600 + t.Minute()*60 + t.Second()}
}

func (t TimeOfDay) Seconds() int {
	return t.seconds
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.seconds < other.seconds
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.seconds > other.seconds
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.seconds/3600, t.seconds%3600/60)
}

// AvailabilityWindow is a recurring weekly time range during which an expert
// can be booked. Windows never span midnight.
type AvailabilityWindow struct {
	weekday Weekday
	start   TimeOfDay
	end     TimeOfDay
}

func NewAvailabilityWindow(weekday string, start, end TimeOfDay) (AvailabilityWindow, error) {
	w, err := NewWeekday(weekday)
	if err != nil {
		return AvailabilityWindow{}, err
	}
	if !start.Before(end) {
		return AvailabilityWindow{}, ErrInvalidWindow
	}
	return AvailabilityWindow{weekday: w, start: start, end: end}, nil
}

// Contains reports whether the clock-time range [start, end] on the given
// weekday falls inside this window.
func (aw AvailabilityWindow) Contains(weekday Weekday, start, end TimeOfDay) bool {
	if aw.weekday != weekday {
		return false
	}
	return !aw.start.After(start) && !end.After(aw.end)
}

func (aw AvailabilityWindow) Weekday() Weekday { return aw.weekday }
func (aw AvailabilityWindow) Start() TimeOfDay { return aw.start }
func (aw AvailabilityWindow) End() TimeOfDay   { return aw.end }
