package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solicare/donation-board/internal/model"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	return s
}

func TestOpenMissingFileIsEmptyDocument(t *testing.T) {
	s := tempStore(t)
	err := s.View(func(doc *model.Document) error {
		assert.Empty(t, doc.Users)
		assert.Empty(t, doc.Cases)
		assert.Empty(t, doc.Subscriptions)
		return nil
	})
	require.NoError(t, err)
}

func TestOpenCorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode store")
}

func TestUpdatePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	s, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, s.Update(func(doc *model.Document) error {
		doc.Cases = append(doc.Cases, model.Case{ID: "c1", Title: "persisted"})
		return nil
	}))

	reopened, err := Open(path)
	require.NoError(t, err)
	err = reopened.View(func(doc *model.Document) error {
		require.Len(t, doc.Cases, 1)
		assert.Equal(t, "persisted", doc.Cases[0].Title)
		return nil
	})
	require.NoError(t, err)
}

func TestUpdateErrorDiscardsChanges(t *testing.T) {
	s := tempStore(t)
	boom := assert.AnError

	err := s.Update(func(doc *model.Document) error {
		doc.Cases = append(doc.Cases, model.Case{ID: "c1"})
		return boom
	})
	require.ErrorIs(t, err, boom)

	err = s.View(func(doc *model.Document) error {
		assert.Empty(t, doc.Cases)
		return nil
	})
	require.NoError(t, err)
}

func TestSeedCreatesAccountsAndDemoCases(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Seed(4)) // minimum bcrypt cost keeps the test fast

	err := s.View(func(doc *model.Document) error {
		require.Len(t, doc.Users, 3)
		roles := map[string]string{}
		for _, u := range doc.Users {
			roles[u.Email] = u.Role
			assert.NotEmpty(t, u.ID)
			assert.NotEqual(t, "admin123", u.PasswordHash, "passwords must be hashed")
		}
		assert.Equal(t, model.RoleAdmin, roles["admin@solicare.tn"])
		assert.Equal(t, model.RoleAssociation, roles["association@solicare.tn"])
		assert.Equal(t, model.RoleDonor, roles["donor@solicare.tn"])

		require.Len(t, doc.Cases, 2)
		for _, c := range doc.Cases {
			assert.Equal(t, model.StatusApproved, c.Status)
			assert.True(t, c.Featured)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestSeedIsIdempotent(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Seed(4))
	require.NoError(t, s.Seed(4))

	err := s.View(func(doc *model.Document) error {
		assert.Len(t, doc.Users, 3)
		assert.Len(t, doc.Cases, 2)
		return nil
	})
	require.NoError(t, err)
}

func TestSeedKeepsExistingCases(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Update(func(doc *model.Document) error {
		doc.Cases = append(doc.Cases, model.Case{ID: "existing"})
		return nil
	}))
	require.NoError(t, s.Seed(4))

	err := s.View(func(doc *model.Document) error {
		require.Len(t, doc.Cases, 1)
		assert.Equal(t, "existing", doc.Cases[0].ID)
		return nil
	})
	require.NoError(t, err)
}
