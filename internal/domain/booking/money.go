package booking

import (
	"errors"
	"math"
)

type Money struct {
	cents int64
}

func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

// MoneyFromAmount rounds an amount to the nearest cent, half away from zero.
func MoneyFromAmount(amount float64) Money {
	return Money{cents: int64(math.Round(amount * 100))}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}
