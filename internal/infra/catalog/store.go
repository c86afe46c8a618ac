package catalog

import (
	"econlearn/internal/domain/concept"
	"econlearn/internal/domain/expert"
	"econlearn/internal/pkg/errs"
)

// Store holds the immutable reference catalog: concepts, their learning
// modules, and the expert roster. It is built once at startup and is safe for
// concurrent reads without synchronization.
type Store struct {
	conceptOrder []string
	concepts     map[string]concept.Concept
	modules      []concept.LearningModule
	expertOrder  []string
	experts      map[string]*expert.Expert
}

func NewStore(concepts []concept.Concept, modules []concept.LearningModule, experts []*expert.Expert) (*Store, error) {
	s := &Store{
		concepts: make(map[string]concept.Concept, len(concepts)),
		modules:  modules,
		experts:  make(map[string]*expert.Expert, len(experts)),
	}

	for _, c := range concepts {
		if c.ID == "" {
			return nil, errs.New("concept with empty id")
		}
		if _, dup := s.concepts[c.ID]; dup {
			return nil, errs.New("duplicate concept id: " + c.ID)
		}
		s.conceptOrder = append(s.conceptOrder, c.ID)
		s.concepts[c.ID] = c
	}

	for _, m := range modules {
		if _, ok := s.concepts[m.ConceptID]; !ok {
			return nil, errs.New("module " + m.ID + " references unknown concept " + m.ConceptID)
		}
	}

	for _, e := range experts {
		if _, dup := s.experts[e.ID()]; dup {
			return nil, errs.New("duplicate expert id: " + e.ID())
		}
		s.expertOrder = append(s.expertOrder, e.ID())
		s.experts[e.ID()] = e
	}

	return s, nil
}

// FindConcept resolves a concept with its modules attached in catalog
// insertion order. Absence is a normal outcome, not an error.
func (s *Store) FindConcept(id string) (concept.Concept, bool) {
	c, ok := s.concepts[id]
	if !ok {
		return concept.Concept{}, false
	}
	c.Modules = s.modulesFor(id)
	return c, true
}

func (s *Store) ListConcepts() []concept.Concept {
	out := make([]concept.Concept, 0, len(s.conceptOrder))
	for _, id := range s.conceptOrder {
		c := s.concepts[id]
		c.Modules = s.modulesFor(id)
		out = append(out, c)
	}
	return out
}

func (s *Store) FindExpert(id string) (*expert.Expert, bool) {
	e, ok := s.experts[id]
	return e, ok
}

// ListExperts returns the roster, narrowed to experts whose focus areas
// contain conceptID (case/whitespace-insensitive) when the filter is
// non-empty.
func (s *Store) ListExperts(conceptID string) []*expert.Expert {
	out := make([]*expert.Expert, 0, len(s.expertOrder))
	for _, id := range s.expertOrder {
		e := s.experts[id]
		if conceptID != "" && !e.HasFocusAreaFold(conceptID) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (s *Store) modulesFor(conceptID string) []concept.LearningModule {
	var out []concept.LearningModule
	for _, m := range s.modules {
		if m.ConceptID == conceptID {
			out = append(out, m)
		}
	}
	return out
}
