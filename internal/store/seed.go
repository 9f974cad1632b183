package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/solicare/donation-board/internal/model"
	"github.com/solicare/donation-board/internal/utils"
)

// Seed ensures the default accounts exist and, when the case
// collection is empty, inserts two approved demo cases so a fresh
// deployment has something to show.  Seeding is idempotent: accounts
// are matched by email and never recreated, and demo cases are only
// added to an empty collection.
func (s *Store) Seed(bcryptCost int) error {
	return s.Update(func(doc *model.Document) error {
		ensure := func(email, password, role string) error {
			for _, u := range doc.Users {
				if u.Email == email {
					return nil
				}
			}
			hash, err := utils.HashPassword(password, bcryptCost)
			if err != nil {
				return err
			}
			doc.Users = append(doc.Users, model.User{
				ID:           uuid.NewString(),
				Email:        email,
				PasswordHash: hash,
				Role:         role,
			})
			return nil
		}

		// Demo credentials; change them before any real deployment.
		if err := ensure("admin@solicare.tn", "admin123", model.RoleAdmin); err != nil {
			return err
		}
		if err := ensure("association@solicare.tn", "assoc123", model.RoleAssociation); err != nil {
			return err
		}
		if err := ensure("donor@solicare.tn", "donor123", model.RoleDonor); err != nil {
			return err
		}

		if len(doc.Cases) == 0 {
			doc.Cases = demoCases()
		}
		return nil
	})
}

// demoCases returns the two showcase records inserted into an empty
// store.  Both are pre-approved and featured so the public catalog
// and home page render immediately.
func demoCases() []model.Case {
	lat, lng := 36.8665, 10.1647
	now := time.Now().UTC()
	return []model.Case{
		{
			ID:             uuid.NewString(),
			Title:          "Médicaments urgents – traitement 1 mois",
			Summary:        "Traitement médical urgent pour un patient en situation précaire.",
			Description:    "Financement de médicaments nécessaires pour un mois de traitement afin d'éviter une complication et de stabiliser l'état de santé.",
			Category:       "Santé",
			Urgency:        model.UrgencyTresUrgent,
			Cha9a9aURL:     "https://cha9a9a.tn/don/traitement-urgent",
			Photos:         []string{"https://images.unsplash.com/photo-1580281658628-3a7e7b6cc7a3?auto=format&fit=crop&w=1200&q=60"},
			GoalAmount:     1200,
			RaisedAmount:   480,
			DonationsCount: 7,
			Status:         model.StatusApproved,
			Featured:       true,
			OwnerEmail:     "association@solicare.tn",
			LocationText:   "Ariana, Tunisie",
			Lat:            &lat,
			Lng:            &lng,
			CreatedAt:      now.Format(time.RFC3339),
			Views:          83,
		},
		{
			ID:             uuid.NewString(),
			Title:          "Fauteuil roulant pour Amal (Ariana)",
			Summary:        "Achat d'un fauteuil roulant adapté + séances de rééducation.",
			Description:    "Amal a besoin d'un fauteuil roulant adapté et de séances de rééducation. Votre don aidera à améliorer sa mobilité et son autonomie.",
			Category:       "Handicap",
			Urgency:        model.UrgencyUrgent,
			Cha9a9aURL:     "https://cha9a9a.tn/don/amal-fauteuil",
			Photos:         []string{"https://images.unsplash.com/photo-1580281657525-5f1b0d1d0002?auto=format&fit=crop&w=1200&q=60"},
			GoalAmount:     2000,
			RaisedAmount:   950,
			DonationsCount: 12,
			Status:         model.StatusApproved,
			Featured:       true,
			OwnerEmail:     "association@solicare.tn",
			LocationText:   "Ariana, Tunisie",
			Lat:            &lat,
			Lng:            &lng,
			CreatedAt:      now.Add(-48 * time.Hour).Format(time.RFC3339),
			Views:          45,
		},
	}
}
