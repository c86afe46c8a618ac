//go:build unit

package builder

import (
	"econlearn/internal/domain/expert"
)

type WindowSpec struct {
	Weekday     string
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
}

type ExpertBuilder struct {
	ID            string
	Name          string
	Credentials   string
	FocusAreas    []string
	RatePerHour   float64
	GroupDiscount float64
	Windows       []WindowSpec
}

func NewExpertBuilder() *ExpertBuilder {
	return &ExpertBuilder{
		ID:            "prof-test",
		Name:          "Prof. Test Expert",
		Credentials:   "Test credentials",
		FocusAreas:    []string{"supply-demand"},
		RatePerHour:   300.0,
		GroupDiscount: 0.9,
		Windows: []WindowSpec{
			{Weekday: "wednesday", StartHour: 9, EndHour: 17},
		},
	}
}

func (b *ExpertBuilder) With(mutate func(*ExpertBuilder)) *ExpertBuilder {
	mutate(b)
	return b
}

func (b *ExpertBuilder) BuildDomain() (*expert.Expert, error) {
	windows := make([]expert.AvailabilityWindow, 0, len(b.Windows))
	for _, w := range b.Windows {
		start, err := expert.NewTimeOfDay(w.StartHour, w.StartMinute)
		if err != nil {
			return nil, err
		}
		end, err := expert.NewTimeOfDay(w.EndHour, w.EndMinute)
		if err != nil {
			return nil, err
		}
		window, err := expert.NewAvailabilityWindow(w.Weekday, start, end)
		if err != nil {
			return nil, err
		}
		windows = append(windows, window)
	}

	return expert.NewExpert(
		b.ID,
		b.Name,
		b.Credentials,
		b.FocusAreas,
		b.RatePerHour,
		b.GroupDiscount,
		windows,
	)
}
