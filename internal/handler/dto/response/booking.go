package response

import (
	"time"

	"econlearn/internal/usecase/commands"

	"github.com/google/uuid"
)

type ConfirmationResponse struct {
	BookingID uuid.UUID       `json:"bookingId"`
	Expert    ExpertResponse  `json:"expert"`
	Concept   ConceptResponse `json:"concept"`
	StartTime time.Time       `json:"startTime"`
	EndTime   time.Time       `json:"endTime"`
	GroupSize int             `json:"groupSize"`
	Price     float64         `json:"price"`
}

type BookingResponse struct {
	Confirmation ConfirmationResponse `json:"confirmation"`
}

func FromConfirmationView(view *commands.ConfirmationView) BookingResponse {
	return BookingResponse{
		Confirmation: ConfirmationResponse{
			BookingID: view.BookingID,
			Expert:    FromExpertView(view.Expert),
			Concept:   FromConceptView(view.Concept),
			StartTime: view.StartTime,
			EndTime:   view.EndTime,
			GroupSize: view.GroupSize,
			Price:     view.Price,
		},
	}
}
