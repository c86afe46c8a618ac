//go:build unit

package builder

import (
	"time"

	reqdto "econlearn/internal/handler/dto/request"
	"econlearn/internal/usecase/commands"
)

// BookingBuilder defaults to a request that the seeded catalog accepts:
// prof-chan covers supply-demand and 2024-05-08 is a Wednesday inside his
// 15:00-18:00 window.
type BookingBuilder struct {
	ExpertID        string
	ConceptID       string
	StartTime       time.Time
	DurationMinutes int
	ClientName      string
	GroupSize       *int
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ExpertID:        "prof-chan",
		ConceptID:       "supply-demand",
		StartTime:       time.Date(2024, 5, 8, 15, 30, 0, 0, time.Local),
		DurationMinutes: 60,
		ClientName:      "Test Learner",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithGroupSize(size int) *BookingBuilder {
	b.GroupSize = &size
	return b
}

func (b *BookingBuilder) BuildParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		ExpertID:        b.ExpertID,
		ConceptID:       b.ConceptID,
		StartTime:       b.StartTime,
		DurationMinutes: b.DurationMinutes,
		ClientName:      b.ClientName,
		GroupSize:       b.GroupSize,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ExpertID:        b.ExpertID,
		ConceptID:       b.ConceptID,
		StartTime:       b.StartTime.Format("2006-01-02T15:04:05"),
		DurationMinutes: b.DurationMinutes,
		ClientName:      b.ClientName,
		GroupSize:       b.GroupSize,
	}
}
