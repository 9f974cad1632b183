package repository

import (
	"sort"
	"strings"

	"github.com/solicare/donation-board/internal/model"
)

// CaseSearchQuery defines filters, sorting and pagination for the
// public catalog.  Zero-value filters are ignored.
type CaseSearchQuery struct {
	Category string
	Urgency  string
	Text     string
	Sort     string // "date" (default), "urgency" or "views"
	Page     int    // 1-based, clamped to >= 1
	Limit    int    // page size, clamped to [1, 50]
}

// normalize clamps pagination values.  The clamps are part of the
// public contract: page below 1 behaves as page 1, limit is bounded
// to at most 50 items and at least 1.
func (q *CaseSearchQuery) normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 1
	}
	if q.Limit > 50 {
		q.Limit = 50
	}
}

// Search runs the catalog query over the stored cases and returns one
// page of results plus the pre-pagination match count.
func (r *CaseRepo) Search(q CaseSearchQuery) ([]model.Case, int, error) {
	var (
		items []model.Case
		total int
	)
	err := r.Store.View(func(doc *model.Document) error {
		items, total = SearchCases(doc.Cases, q)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// SearchCases applies the catalog pipeline to an in-memory case
// collection.  The stage order is fixed and load-bearing: approved
// filter, category, urgency, free text, sort, then pagination.
// Reordering the stages changes which items land on a given page.
func SearchCases(cases []model.Case, q CaseSearchQuery) ([]model.Case, int) {
	q.normalize()

	items := make([]model.Case, 0, len(cases))
	for _, c := range cases {
		if c.Status != model.StatusApproved {
			continue
		}
		if q.Category != "" && c.Category != q.Category {
			continue
		}
		if q.Urgency != "" && c.Urgency != q.Urgency {
			continue
		}
		items = append(items, c)
	}
	if q.Text != "" {
		needle := strings.ToLower(q.Text)
		filtered := items[:0]
		for _, c := range items {
			if matchesText(c, needle) {
				filtered = append(filtered, c)
			}
		}
		items = filtered
	}

	switch q.Sort {
	case "urgency":
		// Rank descending; ties broken by newest first.
		sort.SliceStable(items, func(i, j int) bool {
			ri, rj := model.UrgencyRank(items[i].Urgency), model.UrgencyRank(items[j].Urgency)
			if ri != rj {
				return ri > rj
			}
			return items[i].CreatedAt > items[j].CreatedAt
		})
	case "views":
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Views > items[j].Views
		})
	default:
		// Newest first.  CreatedAt is RFC 3339 so lexicographic
		// comparison orders chronologically; missing timestamps
		// compare as the empty string and sort last.
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt > items[j].CreatedAt
		})
	}

	total := len(items)
	start := (q.Page - 1) * q.Limit
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}
	return items[start:end], total
}

// matchesText reports whether needle (already lower-cased) occurs in
// the title, summary, description or location of the case.
func matchesText(c model.Case, needle string) bool {
	return strings.Contains(strings.ToLower(c.Title), needle) ||
		strings.Contains(strings.ToLower(c.Summary), needle) ||
		strings.Contains(strings.ToLower(c.Description), needle) ||
		strings.Contains(strings.ToLower(c.LocationText), needle)
}
