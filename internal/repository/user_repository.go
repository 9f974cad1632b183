package repository

import (
	"strings"

	"github.com/solicare/donation-board/internal/model"
	"github.com/solicare/donation-board/internal/store"
)

// UserRepo reads accounts from the document store.  Accounts are
// created only by seeding, so the repository is read-only.
type UserRepo struct{ Store *store.Store }

func NewUserRepo(s *store.Store) *UserRepo { return &UserRepo{Store: s} }

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var out model.User
	err := r.Store.View(func(doc *model.Document) error {
		for _, u := range doc.Users {
			if strings.ToLower(u.Email) == email {
				out = u
				return nil
			}
		}
		return ErrUserNotFound
	})
	return out, err
}
