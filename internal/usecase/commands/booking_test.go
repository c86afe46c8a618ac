//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"econlearn/internal/domain/booking"
	"econlearn/internal/infra/catalog"
	"econlearn/internal/infra/ledger"
	"econlearn/internal/pkg/clock"
	"econlearn/internal/usecase/commands"
	"econlearn/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BookingCommandsSuite struct {
	suite.Suite
	store    *catalog.Store
	ledger   *ledger.Ledger
	clock    *clock.MockClock
	commands commands.BookingCommands
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsSuite))
}

func (s *BookingCommandsSuite) SetupSuite() {
	store, err := catalog.NewSeededStore()
	s.Require().NoError(err)
	s.store = store
}

func (s *BookingCommandsSuite) SetupTest() {
	s.ledger = ledger.New()
	s.clock = clock.NewMockClock(time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC))
	s.commands = commands.NewBookingCommands(
		s.store,
		s.ledger,
		booking.NewStandardPriceCalculator(),
		s.clock,
	)
}

func (s *BookingCommandsSuite) TestCreateBookingSuccess() {
	groupSize := 3
	params := builder.NewBookingBuilder().WithGroupSize(groupSize).BuildParams()

	view, err := s.commands.CreateBooking(context.Background(), params)
	s.Require().NoError(err)
	s.Require().NotNil(view)

	s.NotEqual(uuid.Nil, view.BookingID)
	s.Equal("prof-chan", view.Expert.ID)
	s.Equal("supply-demand", view.Concept.ID)
	s.NotEmpty(view.Concept.Modules, "confirmation carries the full learning plan")
	s.Equal(params.StartTime, view.StartTime)
	s.Equal(params.StartTime.Add(time.Hour), view.EndTime)
	s.Equal(3, view.GroupSize)
	// 500/hr * 1h * 0.9 group discount
	s.Equal(450.00, view.Price)

	s.Equal(1, s.ledger.Len())
	committed := s.ledger.BookingsForExpert("prof-chan")
	s.Require().Len(committed, 1)
	s.Equal(s.clock.Now(), committed[0].CreatedAt())
}

func (s *BookingCommandsSuite) TestCreateBookingSoloFullPrice() {
	params := builder.NewBookingBuilder().BuildParams()

	view, err := s.commands.CreateBooking(context.Background(), params)
	s.Require().NoError(err)
	s.Equal(1, view.GroupSize)
	s.Equal(500.00, view.Price)
}

func (s *BookingCommandsSuite) TestCreateBookingNormalizesGroupSize() {
	for _, size := range []int{0, -2} {
		s.ledger.Clear()
		params := builder.NewBookingBuilder().WithGroupSize(size).BuildParams()

		view, err := s.commands.CreateBooking(context.Background(), params)
		s.Require().NoError(err, "group size %d", size)
		s.Equal(1, view.GroupSize)
		s.Equal(500.00, view.Price, "no discount for a normalized solo session")
	}
}

func (s *BookingCommandsSuite) TestCreateBookingRejectsFocusAreaMismatch() {
	// dr-rivera does not cover supply-demand.
	params := builder.NewBookingBuilder().
		With(func(b *builder.BookingBuilder) {
			b.ExpertID = "dr-rivera"
			b.StartTime = time.Date(2024, 5, 7, 13, 30, 0, 0, time.Local)
		}).
		BuildParams()

	_, err := s.commands.CreateBooking(context.Background(), params)
	s.ErrorIs(err, commands.ErrBookingRejected)
	s.Equal(0, s.ledger.Len())
}

func (s *BookingCommandsSuite) TestCreateBookingRejectsUnknownConcept() {
	params := builder.NewBookingBuilder().
		With(func(b *builder.BookingBuilder) { b.ConceptID = "astrology" }).
		BuildParams()

	_, err := s.commands.CreateBooking(context.Background(), params)
	s.ErrorIs(err, commands.ErrBookingRejected)
}

func (s *BookingCommandsSuite) TestCreateBookingRejectsUnknownExpert() {
	params := builder.NewBookingBuilder().
		With(func(b *builder.BookingBuilder) { b.ExpertID = "prof-nobody" }).
		BuildParams()

	_, err := s.commands.CreateBooking(context.Background(), params)
	s.ErrorIs(err, commands.ErrBookingRejected)
}

func (s *BookingCommandsSuite) TestCreateBookingRejectsOutsideAvailability() {
	// 2024-05-07 is a Tuesday; prof-chan only works Wednesday and Friday.
	params := builder.NewBookingBuilder().
		With(func(b *builder.BookingBuilder) {
			b.StartTime = time.Date(2024, 5, 7, 15, 30, 0, 0, time.Local)
		}).
		BuildParams()

	_, err := s.commands.CreateBooking(context.Background(), params)
	s.ErrorIs(err, commands.ErrBookingRejected)
	s.Equal(0, s.ledger.Len())
}

func (s *BookingCommandsSuite) TestCreateBookingRejectsSlotPastWindowEnd() {
	// Window ends at 18:00; a 90 minute slot from 17:00 runs over.
	params := builder.NewBookingBuilder().
		With(func(b *builder.BookingBuilder) {
			b.StartTime = time.Date(2024, 5, 8, 17, 0, 0, 0, time.Local)
			b.DurationMinutes = 90
		}).
		BuildParams()

	_, err := s.commands.CreateBooking(context.Background(), params)
	s.ErrorIs(err, commands.ErrBookingRejected)
}

func (s *BookingCommandsSuite) TestCreateBookingRejectsNonPositiveDuration() {
	for _, d := range []int{0, -60} {
		params := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.DurationMinutes = d }).
			BuildParams()

		_, err := s.commands.CreateBooking(context.Background(), params)
		s.ErrorIs(err, commands.ErrBookingRejected, "duration %d", d)
	}
}

func (s *BookingCommandsSuite) TestCreateBookingRejectsOverlap() {
	first := builder.NewBookingBuilder().BuildParams()
	_, err := s.commands.CreateBooking(context.Background(), first)
	s.Require().NoError(err)

	// 16:00 starts inside the committed 15:30-16:30 slot.
	second := builder.NewBookingBuilder().
		With(func(b *builder.BookingBuilder) {
			b.StartTime = time.Date(2024, 5, 8, 16, 0, 0, 0, time.Local)
		}).
		BuildParams()

	_, err = s.commands.CreateBooking(context.Background(), second)
	s.ErrorIs(err, commands.ErrBookingRejected)
	s.Equal(1, s.ledger.Len())
}

func (s *BookingCommandsSuite) TestCreateBookingAllowsBackToBack() {
	first := builder.NewBookingBuilder().
		With(func(b *builder.BookingBuilder) {
			b.StartTime = time.Date(2024, 5, 8, 15, 0, 0, 0, time.Local)
		}).
		BuildParams()
	second := builder.NewBookingBuilder().
		With(func(b *builder.BookingBuilder) {
			b.StartTime = time.Date(2024, 5, 8, 16, 0, 0, 0, time.Local)
		}).
		BuildParams()

	_, err := s.commands.CreateBooking(context.Background(), first)
	s.Require().NoError(err)
	_, err = s.commands.CreateBooking(context.Background(), second)
	s.Require().NoError(err)
	s.Equal(2, s.ledger.Len())
}

func (s *BookingCommandsSuite) TestCreateBookingSameSlotDifferentExperts() {
	// dr-saito covers monetary-policy on Monday 10:00-12:30; prof-chan's
	// Wednesday slot is unrelated, so both commit.
	first := builder.NewBookingBuilder().BuildParams()
	second := builder.NewBookingBuilder().
		With(func(b *builder.BookingBuilder) {
			b.ExpertID = "dr-saito"
			b.ConceptID = "monetary-policy"
			b.StartTime = time.Date(2024, 5, 6, 10, 30, 0, 0, time.Local)
		}).
		BuildParams()

	_, err := s.commands.CreateBooking(context.Background(), first)
	s.Require().NoError(err)
	_, err = s.commands.CreateBooking(context.Background(), second)
	s.Require().NoError(err)
	s.Equal(2, s.ledger.Len())
}
