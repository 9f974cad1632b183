package repository

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/solicare/donation-board/internal/model"
	"github.com/solicare/donation-board/internal/store"
)

// CaseRepo persists aid cases in the document store.  Every mutation
// runs inside store.Update so concurrent requests cannot interleave
// their load-modify-save cycles.
type CaseRepo struct{ Store *store.Store }

func NewCaseRepo(s *store.Store) *CaseRepo { return &CaseRepo{Store: s} }

// errNoop signals that an Update closure changed nothing and the
// document should not be rewritten.
var errNoop = errors.New("no change")

// StatusCounts aggregates the moderation dashboard numbers.
type StatusCounts struct {
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Rejected int `json:"rejected"`
}

// Create appends a new case owned by ownerEmail.  The id, owner,
// status, timestamps and counters are always assigned here; whatever
// the client sent for those fields is discarded, never merged.  All
// other fields of c are stored verbatim.
func (r *CaseRepo) Create(ownerEmail string, c model.Case) (model.Case, error) {
	c.ID = uuid.NewString()
	c.OwnerEmail = ownerEmail
	c.Status = model.StatusPending
	c.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	c.Views = 0
	c.DonationsCount = 0
	c.Featured = false
	err := r.Store.Update(func(doc *model.Document) error {
		doc.Cases = append(doc.Cases, c)
		return nil
	})
	if err != nil {
		return model.Case{}, err
	}
	return c, nil
}

// GetVisible returns the case with the given id unless it is
// missing or rejected.  Pending cases stay reachable by direct id so
// an association can preview its own submission.
func (r *CaseRepo) GetVisible(id string) (model.Case, error) {
	var out model.Case
	err := r.Store.View(func(doc *model.Document) error {
		for _, c := range doc.Cases {
			if c.ID == id {
				if c.Status == model.StatusRejected {
					return ErrCaseNotFound
				}
				out = c
				return nil
			}
		}
		return ErrCaseNotFound
	})
	return out, err
}

// RecordView increments the view counter of the case with the given
// id, regardless of its moderation status.  A missing id is not an
// error: the caller succeeds and nothing is written.
func (r *CaseRepo) RecordView(id string) error {
	err := r.Store.Update(func(doc *model.Document) error {
		for i := range doc.Cases {
			if doc.Cases[i].ID == id {
				doc.Cases[i].Views++
				return nil
			}
		}
		return errNoop
	})
	if errors.Is(err, errNoop) {
		return nil
	}
	return err
}

// ListByOwner returns every case submitted by the given association,
// whatever its status.
func (r *CaseRepo) ListByOwner(email string) ([]model.Case, error) {
	out := []model.Case{}
	err := r.Store.View(func(doc *model.Document) error {
		for _, c := range doc.Cases {
			if c.OwnerEmail == email {
				out = append(out, c)
			}
		}
		return nil
	})
	return out, err
}

// ListByStatus returns all cases, or only those with the given
// status when it is non-empty.  The filter is an exact match; it is
// not restricted to the fixed status set because moderators may need
// to inspect records with legacy values.
func (r *CaseRepo) ListByStatus(status string) ([]model.Case, error) {
	out := []model.Case{}
	err := r.Store.View(func(doc *model.Document) error {
		for _, c := range doc.Cases {
			if status == "" || c.Status == status {
				out = append(out, c)
			}
		}
		return nil
	})
	return out, err
}

// ListFeatured returns approved featured cases, newest first, capped
// at limit entries.
func (r *CaseRepo) ListFeatured(limit int) ([]model.Case, error) {
	out := []model.Case{}
	err := r.Store.View(func(doc *model.Document) error {
		for _, c := range doc.Cases {
			if c.Status == model.StatusApproved && c.Featured {
				out = append(out, c)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// SetStatus overwrites the moderation status of a case.  Any
// transition within the fixed set is allowed, including back to
// PENDING.  Returns ErrInvalidStatus for values outside the set and
// ErrCaseNotFound for unknown ids.
func (r *CaseRepo) SetStatus(id, status string) (model.Case, error) {
	if !model.ValidStatus(status) {
		return model.Case{}, ErrInvalidStatus
	}
	var out model.Case
	err := r.Store.Update(func(doc *model.Document) error {
		for i := range doc.Cases {
			if doc.Cases[i].ID == id {
				doc.Cases[i].Status = status
				out = doc.Cases[i]
				return nil
			}
		}
		return ErrCaseNotFound
	})
	if err != nil {
		return model.Case{}, err
	}
	return out, nil
}

// SetFeatured toggles the featured flag of a case.
func (r *CaseRepo) SetFeatured(id string, featured bool) (model.Case, error) {
	var out model.Case
	err := r.Store.Update(func(doc *model.Document) error {
		for i := range doc.Cases {
			if doc.Cases[i].ID == id {
				doc.Cases[i].Featured = featured
				out = doc.Cases[i]
				return nil
			}
		}
		return ErrCaseNotFound
	})
	if err != nil {
		return model.Case{}, err
	}
	return out, nil
}

// CountByStatus tallies cases per moderation state for the admin
// dashboard.
func (r *CaseRepo) CountByStatus() (StatusCounts, error) {
	var counts StatusCounts
	err := r.Store.View(func(doc *model.Document) error {
		for _, c := range doc.Cases {
			switch c.Status {
			case model.StatusApproved:
				counts.Approved++
			case model.StatusPending:
				counts.Pending++
			case model.StatusRejected:
				counts.Rejected++
			}
		}
		return nil
	})
	return counts, err
}
