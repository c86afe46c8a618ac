package ledger

import (
	"sync"

	"econlearn/internal/domain/booking"
	"econlearn/internal/pkg/errs"
)

var ErrSlotConflict = errs.New("slot conflicts with an existing booking")

// Ledger is the append-only, process-lifetime collection of committed
// bookings. Conflict detection and the append happen under one lock so that
// two concurrent requests for the same expert cannot both pass the overlap
// check and double-book a slot.
type Ledger struct {
	mu       sync.Mutex
	bookings []*booking.Booking
}

func New() *Ledger {
	return &Ledger{}
}

// Commit appends the booking unless its slot overlaps an existing booking
// for the same expert.
func (l *Ledger) Commit(b *booking.Booking) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.hasConflictLocked(b.ExpertID(), b.Slot()) {
		return ErrSlotConflict
	}
	l.bookings = append(l.bookings, b)
	return nil
}

// HasConflict reports whether the slot overlaps any committed booking for
// the expert. Touching intervals do not conflict.
func (l *Ledger) HasConflict(expertID string, slot booking.TimeSlot) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hasConflictLocked(expertID, slot)
}

func (l *Ledger) hasConflictLocked(expertID string, slot booking.TimeSlot) bool {
	for _, existing := range l.bookings {
		if existing.ExpertID() != expertID {
			continue
		}
		if existing.Slot().Overlaps(slot) {
			return true
		}
	}
	return false
}

func (l *Ledger) BookingsForExpert(expertID string) []*booking.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []*booking.Booking
	for _, b := range l.bookings {
		if b.ExpertID() == expertID {
			out = append(out, b)
		}
	}
	return out
}

func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.bookings)
}

// Clear resets the ledger. Intended for test isolation only.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bookings = nil
}
