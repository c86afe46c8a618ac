package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a committed reservation of an expert's time. It is created only
// by a successful commit and never mutated afterwards.
type Booking struct {
	id        uuid.UUID
	expertID  string
	conceptID string
	slot      TimeSlot
	groupSize int
	price     Money
	createdAt time.Time
}

// NewBooking assigns a fresh identifier. Group sizes of zero or below count
// as a single-attendee session.
func NewBooking(expertID, conceptID string, slot TimeSlot, groupSize int, price Money, createdAt time.Time) *Booking {
	if groupSize < 1 {
		groupSize = 1
	}
	return &Booking{
		id:        uuid.New(),
		expertID:  expertID,
		conceptID: conceptID,
		slot:      slot,
		groupSize: groupSize,
		price:     price,
		createdAt: createdAt,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ExpertID() string     { return b.expertID }
func (b *Booking) ConceptID() string    { return b.conceptID }
func (b *Booking) Slot() TimeSlot       { return b.slot }
func (b *Booking) GroupSize() int       { return b.groupSize }
func (b *Booking) Price() Money         { return b.price }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
