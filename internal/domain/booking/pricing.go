package booking

import (
	"econlearn/internal/domain/expert"
)

type PriceCalculator interface {
	Price(ex *expert.Expert, durationMinutes, groupSize int) Money
}

// StandardPriceCalculator charges the expert's hourly rate pro rata and
// applies the expert's multiplicative group discount for sessions with more
// than one attendee. Amounts are rounded to the nearest cent, half away from
// zero.
type StandardPriceCalculator struct{}

func NewStandardPriceCalculator() *StandardPriceCalculator {
	return &StandardPriceCalculator{}
}

func (pc *StandardPriceCalculator) Price(ex *expert.Expert, durationMinutes, groupSize int) Money {
	hours := float64(durationMinutes) / 60
	base := ex.RatePerHour() * hours
	if groupSize > 1 {
		base *= ex.GroupDiscount()
	}
	return MoneyFromAmount(base)
}
