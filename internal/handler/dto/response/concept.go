package response

import (
	"econlearn/internal/usecase/queries"
)

type ModuleResourceResponse struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

type ModuleResponse struct {
	ID             string                   `json:"id"`
	ConceptID      string                   `json:"conceptId"`
	Title          string                   `json:"title"`
	Objectives     []string                 `json:"objectives"`
	ContentSummary string                   `json:"contentSummary"`
	Resources      []ModuleResourceResponse `json:"resources"`
}

type ConceptResponse struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Summary      string           `json:"summary"`
	WhyItMatters string           `json:"whyItMatters"`
	Modules      []ModuleResponse `json:"modules"`
}

type ConceptsResponse struct {
	Concepts []ConceptResponse `json:"concepts"`
}

func FromConceptView(view queries.ConceptView) ConceptResponse {
	modules := make([]ModuleResponse, 0, len(view.Modules))
	for _, m := range view.Modules {
		resources := make([]ModuleResourceResponse, 0, len(m.Resources))
		for _, r := range m.Resources {
			resources = append(resources, ModuleResourceResponse(r))
		}
		modules = append(modules, ModuleResponse{
			ID:             m.ID,
			ConceptID:      m.ConceptID,
			Title:          m.Title,
			Objectives:     m.Objectives,
			ContentSummary: m.ContentSummary,
			Resources:      resources,
		})
	}
	return ConceptResponse{
		ID:           view.ID,
		Title:        view.Title,
		Summary:      view.Summary,
		WhyItMatters: view.WhyItMatters,
		Modules:      modules,
	}
}

func FromConceptViews(views []queries.ConceptView) ConceptsResponse {
	concepts := make([]ConceptResponse, 0, len(views))
	for _, v := range views {
		concepts = append(concepts, FromConceptView(v))
	}
	return ConceptsResponse{Concepts: concepts}
}
