package repository

import (
	"strings"

	"github.com/solicare/donation-board/internal/model"
	"github.com/solicare/donation-board/internal/store"
)

// SubscriptionRepo persists urgent-notification opt-ins.  Records are
// keyed by email: upserting twice leaves exactly one record carrying
// the latest flag.
type SubscriptionRepo struct{ Store *store.Store }

func NewSubscriptionRepo(s *store.Store) *SubscriptionRepo {
	return &SubscriptionRepo{Store: s}
}

// Upsert creates or overwrites the subscription for email.  The
// operation is idempotent.
func (r *SubscriptionRepo) Upsert(email string, urgent bool) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	return r.Store.Update(func(doc *model.Document) error {
		for i := range doc.Subscriptions {
			if doc.Subscriptions[i].Email == email {
				doc.Subscriptions[i].Urgent = urgent
				return nil
			}
		}
		doc.Subscriptions = append(doc.Subscriptions, model.Subscription{Email: email, Urgent: urgent})
		return nil
	})
}

// ListUrgent returns the emails currently opted in to urgent-case
// notifications.  Used by the notification consumer to fan events
// out.
func (r *SubscriptionRepo) ListUrgent() ([]string, error) {
	out := []string{}
	err := r.Store.View(func(doc *model.Document) error {
		for _, s := range doc.Subscriptions {
			if s.Urgent {
				out = append(out, s.Email)
			}
		}
		return nil
	})
	return out, err
}
