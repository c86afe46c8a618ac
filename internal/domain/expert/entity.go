package expert

import (
	"errors"
	"strings"
)

var (
	ErrEmptyExpertID   = errors.New("expert id cannot be empty")
	ErrEmptyExpertName = errors.New("expert name cannot be empty")
	ErrInvalidRate     = errors.New("hourly rate must be positive")
	ErrInvalidDiscount = errors.New("group discount must be between 0 and 1")
)

type Expert struct {
	id            string
	name          string
	credentials   string
	focusAreas    []string
	ratePerHour   float64
	groupDiscount float64
	availability  []AvailabilityWindow
}

func NewExpert(
	id, name, credentials string,
	focusAreas []string,
	ratePerHour, groupDiscount float64,
	availability []AvailabilityWindow,
) (*Expert, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyExpertID
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyExpertName
	}
	if ratePerHour <= 0 {
		return nil, ErrInvalidRate
	}
	if groupDiscount < 0 || groupDiscount > 1 {
		return nil, ErrInvalidDiscount
	}

	return &Expert{
		id:            id,
		name:          name,
		credentials:   credentials,
		focusAreas:    focusAreas,
		ratePerHour:   ratePerHour,
		groupDiscount: groupDiscount,
		availability:  availability,
	}, nil
}

// HasFocusArea reports exact membership of conceptID in the focus areas.
// Booking validation is deliberately strict about casing.
func (e *Expert) HasFocusArea(conceptID string) bool {
	for _, area := range e.focusAreas {
		if area == conceptID {
			return true
		}
	}
	return false
}

// HasFocusAreaFold matches case-insensitively against a trimmed conceptID,
// the semantics of the roster filter.
func (e *Expert) HasFocusAreaFold(conceptID string) bool {
	normalized := strings.ToLower(strings.TrimSpace(conceptID))
	for _, area := range e.focusAreas {
		if strings.ToLower(area) == normalized {
			return true
		}
	}
	return false
}

func (e *Expert) ID() string                          { return e.id }
func (e *Expert) Name() string                        { return e.name }
func (e *Expert) Credentials() string                 { return e.credentials }
func (e *Expert) FocusAreas() []string                { return e.focusAreas }
func (e *Expert) RatePerHour() float64                { return e.ratePerHour }
func (e *Expert) GroupDiscount() float64              { return e.groupDiscount }
func (e *Expert) Availability() []AvailabilityWindow { return e.availability }
