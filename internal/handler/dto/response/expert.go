package response

import (
	"econlearn/internal/usecase/queries"
)

type AvailabilityResponse struct {
	Weekday string `json:"weekday"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

type ExpertResponse struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Credentials   string                 `json:"credentials"`
	FocusAreas    []string               `json:"focusAreas"`
	RatePerHour   float64                `json:"ratePerHour"`
	GroupDiscount float64                `json:"groupDiscount"`
	Availability  []AvailabilityResponse `json:"availability"`
}

type ExpertsResponse struct {
	Experts []ExpertResponse `json:"experts"`
}

func FromExpertView(view queries.ExpertView) ExpertResponse {
	windows := make([]AvailabilityResponse, 0, len(view.Availability))
	for _, w := range view.Availability {
		windows = append(windows, AvailabilityResponse(w))
	}
	return ExpertResponse{
		ID:            view.ID,
		Name:          view.Name,
		Credentials:   view.Credentials,
		FocusAreas:    view.FocusAreas,
		RatePerHour:   view.RatePerHour,
		GroupDiscount: view.GroupDiscount,
		Availability:  windows,
	}
}

func FromExpertViews(views []queries.ExpertView) ExpertsResponse {
	experts := make([]ExpertResponse, 0, len(views))
	for _, v := range views {
		experts = append(experts, FromExpertView(v))
	}
	return ExpertsResponse{Experts: experts}
}
