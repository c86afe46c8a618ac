package queries

import (
	"context"

	"econlearn/internal/domain/concept"
	"econlearn/internal/domain/expert"
	"econlearn/internal/infra/catalog"
)

// Read models (DTO for read side)
type ModuleResourceView struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

type ModuleView struct {
	ID             string               `json:"id"`
	ConceptID      string               `json:"concept_id"`
	Title          string               `json:"title"`
	Objectives     []string             `json:"objectives"`
	ContentSummary string               `json:"content_summary"`
	Resources      []ModuleResourceView `json:"resources"`
}

type ConceptView struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Summary      string       `json:"summary"`
	WhyItMatters string       `json:"why_it_matters"`
	Modules      []ModuleView `json:"modules"`
}

type AvailabilityView struct {
	Weekday string `json:"weekday"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

type ExpertView struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Credentials   string             `json:"credentials"`
	FocusAreas    []string           `json:"focus_areas"`
	RatePerHour   float64            `json:"rate_per_hour"`
	GroupDiscount float64            `json:"group_discount"`
	Availability  []AvailabilityView `json:"availability"`
}

type CatalogQueries interface {
	ListConcepts(ctx context.Context) []ConceptView
	GetConcept(ctx context.Context, id string) (*ConceptView, bool)
	ListExperts(ctx context.Context, conceptID string) []ExpertView
}

type catalogQueriesImpl struct {
	store *catalog.Store
}

func NewCatalogQueries(store *catalog.Store) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListConcepts(_ context.Context) []ConceptView {
	concepts := q.store.ListConcepts()
	out := make([]ConceptView, 0, len(concepts))
	for _, c := range concepts {
		out = append(out, NewConceptView(c))
	}
	return out
}

func (q *catalogQueriesImpl) GetConcept(_ context.Context, id string) (*ConceptView, bool) {
	c, ok := q.store.FindConcept(id)
	if !ok {
		return nil, false
	}
	view := NewConceptView(c)
	return &view, true
}

func (q *catalogQueriesImpl) ListExperts(_ context.Context, conceptID string) []ExpertView {
	experts := q.store.ListExperts(conceptID)
	out := make([]ExpertView, 0, len(experts))
	for _, e := range experts {
		out = append(out, NewExpertView(e))
	}
	return out
}

func NewConceptView(c concept.Concept) ConceptView {
	modules := make([]ModuleView, 0, len(c.Modules))
	for _, m := range c.Modules {
		resources := make([]ModuleResourceView, 0, len(m.Resources))
		for _, r := range m.Resources {
			resources = append(resources, ModuleResourceView{
				Type:  r.Type,
				Title: r.Title,
				URL:   r.URL,
			})
		}
		modules = append(modules, ModuleView{
			ID:             m.ID,
			ConceptID:      m.ConceptID,
			Title:          m.Title,
			Objectives:     m.Objectives,
			ContentSummary: m.ContentSummary,
			Resources:      resources,
		})
	}
	return ConceptView{
		ID:           c.ID,
		Title:        c.Title,
		Summary:      c.Summary,
		WhyItMatters: c.WhyItMatters,
		Modules:      modules,
	}
}

func NewExpertView(e *expert.Expert) ExpertView {
	windows := make([]AvailabilityView, 0, len(e.Availability()))
	for _, w := range e.Availability() {
		windows = append(windows, AvailabilityView{
			Weekday: w.Weekday().String(),
			Start:   w.Start().String(),
			End:     w.End().String(),
		})
	}
	return ExpertView{
		ID:            e.ID(),
		Name:          e.Name(),
		Credentials:   e.Credentials(),
		FocusAreas:    e.FocusAreas(),
		RatePerHour:   e.RatePerHour(),
		GroupDiscount: e.GroupDiscount(),
		Availability:  windows,
	}
}
