//go:build unit

package catalog_test

import (
	"testing"

	"econlearn/internal/domain/concept"
	"econlearn/internal/domain/expert"
	"econlearn/internal/infra/catalog"
	"econlearn/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededStore(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.NewSeededStore()
	require.NoError(t, err)
	return store
}

func TestSeededStoreConcepts(t *testing.T) {
	store := newSeededStore(t)

	t.Run("lists concepts in catalog order", func(t *testing.T) {
		concepts := store.ListConcepts()
		require.Len(t, concepts, 4)

		ids := make([]string, 0, len(concepts))
		for _, c := range concepts {
			ids = append(ids, c.ID)
		}
		assert.Equal(t, []string{"supply-demand", "gdp-measurement", "monetary-policy", "market-failures"}, ids)
	})

	t.Run("resolves modules in insertion order", func(t *testing.T) {
		c, ok := store.FindConcept("supply-demand")
		require.True(t, ok)
		require.Len(t, c.Modules, 2)
		assert.Equal(t, "supply-demand-foundations", c.Modules[0].ID)
		assert.Equal(t, "supply-demand-scenarios", c.Modules[1].ID)
		assert.NotEmpty(t, c.Modules[0].Resources)
	})

	t.Run("absent concept is a normal outcome", func(t *testing.T) {
		_, ok := store.FindConcept("unknown")
		assert.False(t, ok)
	})

	t.Run("reads are idempotent", func(t *testing.T) {
		first := store.ListConcepts()
		second := store.ListConcepts()
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("ListConcepts mismatch across calls (-first +second):\n%s", diff)
		}

		a, ok := store.FindConcept("monetary-policy")
		require.True(t, ok)
		b, ok := store.FindConcept("monetary-policy")
		require.True(t, ok)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("FindConcept mismatch across calls (-a +b):\n%s", diff)
		}
	})
}

func TestSeededStoreExperts(t *testing.T) {
	store := newSeededStore(t)

	t.Run("lists full roster without filter", func(t *testing.T) {
		experts := store.ListExperts("")
		require.Len(t, experts, 3)
		assert.Equal(t, "dr-rivera", experts[0].ID())
		assert.Equal(t, "prof-chan", experts[1].ID())
		assert.Equal(t, "dr-saito", experts[2].ID())
	})

	t.Run("filters by focus area", func(t *testing.T) {
		experts := store.ListExperts("supply-demand")
		require.Len(t, experts, 1)
		assert.Equal(t, "prof-chan", experts[0].ID())

		for _, e := range experts {
			assert.True(t, e.HasFocusAreaFold("supply-demand"))
		}
	})

	t.Run("filter is case and whitespace insensitive", func(t *testing.T) {
		experts := store.ListExperts("  SUPPLY-DEMAND  ")
		require.Len(t, experts, 1)
		assert.Equal(t, "prof-chan", experts[0].ID())
	})

	t.Run("unknown filter yields empty roster", func(t *testing.T) {
		assert.Empty(t, store.ListExperts("basket-weaving"))
	})

	t.Run("absent expert is a normal outcome", func(t *testing.T) {
		_, ok := store.FindExpert("unknown")
		assert.False(t, ok)
	})
}

func TestNewStoreValidation(t *testing.T) {
	validConcepts := []concept.Concept{{ID: "c1", Title: "C1"}}

	expertEntity, err := builder.NewExpertBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("rejects empty concept id", func(t *testing.T) {
		_, err := catalog.NewStore([]concept.Concept{{Title: "anonymous"}}, nil, nil)
		assert.Error(t, err)
	})

	t.Run("rejects duplicate concept ids", func(t *testing.T) {
		_, err := catalog.NewStore([]concept.Concept{{ID: "c1"}, {ID: "c1"}}, nil, nil)
		assert.Error(t, err)
	})

	t.Run("rejects module with unknown concept", func(t *testing.T) {
		modules := []concept.LearningModule{{ID: "m1", ConceptID: "missing"}}
		_, err := catalog.NewStore(validConcepts, modules, nil)
		assert.Error(t, err)
	})

	t.Run("rejects duplicate expert ids", func(t *testing.T) {
		other, err := builder.NewExpertBuilder().BuildDomain()
		require.NoError(t, err)
		_, err = catalog.NewStore(validConcepts, nil, []*expert.Expert{expertEntity, other})
		assert.Error(t, err)
	})
}
