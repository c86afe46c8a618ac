package commands

import (
	"context"
	"log/slog"
	"time"

	"econlearn/internal/domain/booking"
	"econlearn/internal/infra/catalog"
	"econlearn/internal/infra/ledger"
	"econlearn/internal/pkg/clock"
	"econlearn/internal/pkg/errs"
	"econlearn/internal/usecase/queries"

	"github.com/google/uuid"
)

// ErrBookingRejected is the single rejection outcome of CreateBooking. The
// engine deliberately does not distinguish why a booking was refused; the
// underlying cause is retained in the error chain for logging only.
var ErrBookingRejected = errs.New("booking rejected")

var (
	errUnknownConcept      = errs.New("unknown concept")
	errUnknownExpert       = errs.New("unknown expert")
	errFocusAreaMismatch   = errs.New("concept not in expert focus areas")
	errInvalidSlot         = errs.New("invalid requested slot")
	errOutsideAvailability = errs.New("slot outside expert availability")
)

type CreateBookingParams struct {
	ExpertID        string
	ConceptID       string
	StartTime       time.Time
	DurationMinutes int
	ClientName      string
	GroupSize       *int
}

// ConfirmationView joins the committed booking with the full expert and
// concept records. It is derived per request and never stored.
type ConfirmationView struct {
	BookingID uuid.UUID           `json:"booking_id"`
	Expert    queries.ExpertView  `json:"expert"`
	Concept   queries.ConceptView `json:"concept"`
	StartTime time.Time           `json:"start_time"`
	EndTime   time.Time           `json:"end_time"`
	GroupSize int                 `json:"group_size"`
	Price     float64             `json:"price"`
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*ConfirmationView, error)
}

type bookingCommandsImpl struct {
	store  *catalog.Store
	ledger *ledger.Ledger
	calc   booking.PriceCalculator
	clock  clock.Clock
}

func NewBookingCommands(
	store *catalog.Store,
	bookingLedger *ledger.Ledger,
	calc booking.PriceCalculator,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		store:  store,
		ledger: bookingLedger,
		calc:   calc,
		clock:  clk,
	}
}

// CreateBooking runs the validation pipeline and commits on success. The
// conflict check and the ledger append are atomic inside ledger.Commit, so
// concurrent requests against the same expert serialize there.
func (c *bookingCommandsImpl) CreateBooking(_ context.Context, params CreateBookingParams) (*ConfirmationView, error) {
	conceptRecord, ok := c.store.FindConcept(params.ConceptID)
	if !ok {
		return nil, c.reject(errUnknownConcept, params)
	}

	expertRecord, ok := c.store.FindExpert(params.ExpertID)
	if !ok {
		return nil, c.reject(errUnknownExpert, params)
	}

	// Exact match here, unlike the normalized roster filter.
	if !expertRecord.HasFocusArea(params.ConceptID) {
		return nil, c.reject(errFocusAreaMismatch, params)
	}

	slot, err := booking.NewTimeSlot(params.StartTime, params.DurationMinutes)
	if err != nil {
		return nil, c.reject(errs.Mark(err, errInvalidSlot), params)
	}

	if !booking.WithinAvailability(expertRecord, slot) {
		return nil, c.reject(errOutsideAvailability, params)
	}

	groupSize := 1
	if params.GroupSize != nil && *params.GroupSize > 0 {
		groupSize = *params.GroupSize
	}
	price := c.calc.Price(expertRecord, params.DurationMinutes, groupSize)

	committed := booking.NewBooking(
		expertRecord.ID(),
		conceptRecord.ID,
		slot,
		groupSize,
		price,
		c.clock.Now(),
	)

	if err := c.ledger.Commit(committed); err != nil {
		return nil, c.reject(err, params)
	}

	slog.Info("booking committed",
		"booking_id", committed.ID(),
		"expert_id", committed.ExpertID(),
		"concept_id", committed.ConceptID(),
		"slot", slot.String(),
		"client", params.ClientName,
	)

	return &ConfirmationView{
		BookingID: committed.ID(),
		Expert:    queries.NewExpertView(expertRecord),
		Concept:   queries.NewConceptView(conceptRecord),
		StartTime: slot.Start(),
		EndTime:   slot.End(),
		GroupSize: committed.GroupSize(),
		Price:     committed.Price().Amount(),
	}, nil
}

func (c *bookingCommandsImpl) reject(cause error, params CreateBookingParams) error {
	slog.Debug("booking rejected",
		"expert_id", params.ExpertID,
		"concept_id", params.ConceptID,
		"cause", cause.Error(),
	)
	return errs.Mark(cause, ErrBookingRejected)
}
