package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solicare/donation-board/internal/model"
)

func catalogFixture() []model.Case {
	return []model.Case{
		{ID: "a", Title: "Fauteuil roulant pour Amal", Summary: "mobilité", Description: "achat d'un fauteuil", Category: "Handicap", Urgency: model.UrgencyUrgent, Status: model.StatusApproved, CreatedAt: "2024-03-01T10:00:00Z", Views: 40, LocationText: "Ariana"},
		{ID: "b", Title: "Médicaments urgents", Summary: "traitement", Description: "un mois de traitement", Category: "Santé", Urgency: model.UrgencyTresUrgent, Status: model.StatusApproved, CreatedAt: "2024-03-03T10:00:00Z", Views: 10, LocationText: "Tunis"},
		{ID: "c", Title: "Cartable scolaire", Summary: "rentrée", Description: "fournitures pour la rentrée", Category: "Education", Urgency: model.UrgencyNormal, Status: model.StatusApproved, CreatedAt: "2024-03-02T10:00:00Z", Views: 99},
		{ID: "d", Title: "Refusé", Description: "ne doit pas apparaître", Category: "Santé", Urgency: model.UrgencyTresUrgent, Status: model.StatusRejected, CreatedAt: "2024-03-04T10:00:00Z", Views: 500},
		{ID: "e", Title: "En attente", Description: "pas encore modéré", Category: "Santé", Urgency: model.UrgencyUrgent, Status: model.StatusPending, CreatedAt: "2024-03-05T10:00:00Z", Views: 7},
		{ID: "f", Title: "Aide alimentaire", Summary: "paniers", Description: "paniers pour familles", Category: "Alimentaire", Urgency: model.UrgencyUrgent, Status: model.StatusApproved, CreatedAt: "2024-03-01T09:00:00Z", Views: 40},
	}
}

func ids(cs []model.Case) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func TestSearchCasesOnlyApproved(t *testing.T) {
	items, total := SearchCases(catalogFixture(), CaseSearchQuery{Page: 1, Limit: 50})
	assert.Equal(t, 4, total)
	for _, c := range items {
		assert.Equal(t, model.StatusApproved, c.Status)
	}
}

func TestSearchCasesFilters(t *testing.T) {
	cases := catalogFixture()

	t.Run("category exact match", func(t *testing.T) {
		items, total := SearchCases(cases, CaseSearchQuery{Category: "Santé", Page: 1, Limit: 50})
		assert.Equal(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, "b", items[0].ID)
	})

	t.Run("urgency exact match", func(t *testing.T) {
		items, total := SearchCases(cases, CaseSearchQuery{Urgency: model.UrgencyUrgent, Page: 1, Limit: 50})
		assert.Equal(t, 2, total)
		assert.ElementsMatch(t, []string{"a", "f"}, ids(items))
	})

	t.Run("free text is case-insensitive over title/summary/description/location", func(t *testing.T) {
		_, total := SearchCases(cases, CaseSearchQuery{Text: "FAUTEUIL", Page: 1, Limit: 50})
		assert.Equal(t, 1, total)

		_, total = SearchCases(cases, CaseSearchQuery{Text: "ariana", Page: 1, Limit: 50})
		assert.Equal(t, 1, total) // location text of case a

		_, total = SearchCases(cases, CaseSearchQuery{Text: "paniers", Page: 1, Limit: 50})
		assert.Equal(t, 1, total) // summary + description of case f

		_, total = SearchCases(cases, CaseSearchQuery{Text: "zzz", Page: 1, Limit: 50})
		assert.Equal(t, 0, total)
	})

	t.Run("filters compose", func(t *testing.T) {
		items, total := SearchCases(cases, CaseSearchQuery{Category: "Handicap", Urgency: model.UrgencyUrgent, Text: "amal", Page: 1, Limit: 50})
		assert.Equal(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, "a", items[0].ID)
	})
}

func TestSearchCasesSorting(t *testing.T) {
	cases := catalogFixture()

	t.Run("default sorts by date descending", func(t *testing.T) {
		items, _ := SearchCases(cases, CaseSearchQuery{Page: 1, Limit: 50})
		assert.Equal(t, []string{"b", "c", "a", "f"}, ids(items))
	})

	t.Run("missing timestamps sort last", func(t *testing.T) {
		withMissing := append(catalogFixture(), model.Case{ID: "g", Status: model.StatusApproved})
		items, _ := SearchCases(withMissing, CaseSearchQuery{Page: 1, Limit: 50})
		assert.Equal(t, "g", items[len(items)-1].ID)
	})

	t.Run("urgency ranks TRES_URGENT over URGENT over NORMAL, ties by date desc", func(t *testing.T) {
		items, _ := SearchCases(cases, CaseSearchQuery{Sort: "urgency", Page: 1, Limit: 50})
		// b (rank 3), then a and f (rank 2, a is newer), then c (rank 1).
		assert.Equal(t, []string{"b", "a", "f", "c"}, ids(items))
	})

	t.Run("views sorts descending with missing counted as zero", func(t *testing.T) {
		items, _ := SearchCases(cases, CaseSearchQuery{Sort: "views", Page: 1, Limit: 50})
		require.Len(t, items, 4)
		assert.Equal(t, "c", items[0].ID)
		for i := 1; i < len(items); i++ {
			assert.GreaterOrEqual(t, items[i-1].Views, items[i].Views)
		}
	})
}

func TestSearchCasesPagination(t *testing.T) {
	cases := make([]model.Case, 0, 25)
	for i := 0; i < 25; i++ {
		cases = append(cases, model.Case{
			ID:        fmt.Sprintf("c%02d", i),
			Status:    model.StatusApproved,
			CreatedAt: fmt.Sprintf("2024-01-%02dT00:00:00Z", i+1),
		})
	}

	t.Run("page size never exceeds limit", func(t *testing.T) {
		items, total := SearchCases(cases, CaseSearchQuery{Page: 1, Limit: 10})
		assert.Equal(t, 25, total)
		assert.Len(t, items, 10)
	})

	t.Run("last page returns the remainder", func(t *testing.T) {
		items, total := SearchCases(cases, CaseSearchQuery{Page: 3, Limit: 10})
		assert.Equal(t, 25, total)
		assert.Len(t, items, 5)
	})

	t.Run("page past the end is empty but keeps total", func(t *testing.T) {
		items, total := SearchCases(cases, CaseSearchQuery{Page: 9, Limit: 10})
		assert.Equal(t, 25, total)
		assert.Empty(t, items)
	})

	t.Run("pages do not overlap", func(t *testing.T) {
		p1, _ := SearchCases(cases, CaseSearchQuery{Page: 1, Limit: 10})
		p2, _ := SearchCases(cases, CaseSearchQuery{Page: 2, Limit: 10})
		seen := map[string]bool{}
		for _, c := range p1 {
			seen[c.ID] = true
		}
		for _, c := range p2 {
			assert.False(t, seen[c.ID], "case %s appears on both pages", c.ID)
		}
	})
}

func TestSearchCasesClamps(t *testing.T) {
	cases := catalogFixture()

	t.Run("page below 1 behaves as page 1", func(t *testing.T) {
		want, _ := SearchCases(cases, CaseSearchQuery{Page: 1, Limit: 2})
		got, _ := SearchCases(cases, CaseSearchQuery{Page: 0, Limit: 2})
		assert.Equal(t, ids(want), ids(got))
		got, _ = SearchCases(cases, CaseSearchQuery{Page: -5, Limit: 2})
		assert.Equal(t, ids(want), ids(got))
	})

	t.Run("limit clamps to [1, 50]", func(t *testing.T) {
		want, _ := SearchCases(cases, CaseSearchQuery{Page: 1, Limit: 50})
		got, _ := SearchCases(cases, CaseSearchQuery{Page: 1, Limit: 500})
		assert.Equal(t, ids(want), ids(got))

		one, _ := SearchCases(cases, CaseSearchQuery{Page: 1, Limit: 0})
		assert.Len(t, one, 1)
		one, _ = SearchCases(cases, CaseSearchQuery{Page: 1, Limit: -3})
		assert.Len(t, one, 1)
	})
}

// The worked example from the moderation flow: a freshly approved
// NORMAL case shows up in an unfiltered listing but not under a
// TRES_URGENT filter.
func TestSearchCasesModerationExample(t *testing.T) {
	cases := []model.Case{{
		ID:          "x",
		Title:       "Need help",
		Description: "details",
		Urgency:     model.UrgencyNormal,
		Status:      model.StatusApproved,
		CreatedAt:   "2024-05-01T00:00:00Z",
	}}

	items, total := SearchCases(cases, CaseSearchQuery{Page: 1, Limit: 12})
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)

	_, total = SearchCases(cases, CaseSearchQuery{Urgency: model.UrgencyTresUrgent, Page: 1, Limit: 12})
	assert.Zero(t, total)
}
