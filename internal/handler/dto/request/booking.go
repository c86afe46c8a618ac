package request

import (
	"strings"
	"time"

	"econlearn/internal/pkg/errs"
	"econlearn/internal/usecase/commands"
)

var ErrInvalidStartTime = errs.New("invalid start_time format")

// startTimeLayouts accepts naive local datetimes alongside RFC3339. The
// booking engine works in naive local time; offsets, when present, are kept
// as parsed.
var startTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

type CreateBookingRequest struct {
	ExpertID        string `json:"expert_id" binding:"required"`
	ConceptID       string `json:"concept_id" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
	ClientName      string `json:"client_name" binding:"required"`
	GroupSize       *int   `json:"group_size,omitempty"`
}

func (r CreateBookingRequest) ToParams() (commands.CreateBookingParams, error) {
	start, err := parseStartTime(r.StartTime)
	if err != nil {
		return commands.CreateBookingParams{}, err
	}

	return commands.CreateBookingParams{
		ExpertID:        r.ExpertID,
		ConceptID:       r.ConceptID,
		StartTime:       start,
		DurationMinutes: r.DurationMinutes,
		ClientName:      strings.TrimSpace(r.ClientName),
		GroupSize:       r.GroupSize,
	}, nil
}

func parseStartTime(value string) (time.Time, error) {
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidStartTime
}
