//go:build unit

package booking_test

import (
	"testing"
	"time"

	"econlearn/internal/domain/booking"
	"econlearn/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinAvailability(t *testing.T) {
	// Single window: Wednesday 09:00-17:00. 2024-05-08 is a Wednesday.
	ex, err := builder.NewExpertBuilder().BuildDomain()
	require.NoError(t, err)

	wednesday := time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		start    time.Time
		duration int
		expected bool
	}{
		{"inside window", wednesday.Add(10 * time.Hour), 60, true},
		{"window start boundary", wednesday.Add(9 * time.Hour), 60, true},
		{"window end boundary", wednesday.Add(16 * time.Hour), 60, true},
		{"starts before window", wednesday.Add(8*time.Hour + 30*time.Minute), 60, false},
		{"runs past window end", wednesday.Add(16*time.Hour + 30*time.Minute), 60, false},
		{"wrong weekday", tuesday.Add(10 * time.Hour), 60, false},
		{"crosses midnight", wednesday.Add(23*time.Hour + 30*time.Minute), 60, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			slot := mustSlot(t, c.start, c.duration)
			assert.Equal(t, c.expected, booking.WithinAvailability(ex, slot))
		})
	}
}

func TestWithinAvailabilityMultipleWindows(t *testing.T) {
	ex, err := builder.NewExpertBuilder().
		With(func(b *builder.ExpertBuilder) {
			b.Windows = []builder.WindowSpec{
				{Weekday: "tuesday", StartHour: 13, EndHour: 16},
				{Weekday: "thursday", StartHour: 9, StartMinute: 0, EndHour: 11, EndMinute: 30},
			}
		}).
		BuildDomain()
	require.NoError(t, err)

	// 2024-05-07 Tuesday, 2024-05-09 Thursday
	assert.True(t, booking.WithinAvailability(ex, mustSlot(t, time.Date(2024, 5, 7, 13, 30, 0, 0, time.UTC), 60)))
	assert.True(t, booking.WithinAvailability(ex, mustSlot(t, time.Date(2024, 5, 9, 10, 30, 0, 0, time.UTC), 60)))
	assert.False(t, booking.WithinAvailability(ex, mustSlot(t, time.Date(2024, 5, 9, 11, 0, 0, 0, time.UTC), 60)),
		"slot overflows the 11:30 window end")
}
