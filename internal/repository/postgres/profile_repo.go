package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/arya/movie-mate-backend/internal/domain"
	"gorm.io/gorm"
)

type profileRepository struct {
	store *documentStore
}

func NewProfileRepository(db *gorm.DB) *profileRepository {
	return &profileRepository{store: &documentStore{db: db}}
}

// Upsert replaces the user's profile document wholesale. The document id is
// the user id, which is what enforces one profile per user.
func (r *profileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	body, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	return r.store.upsertItem(ctx, &Document{
		ID:     profile.UserID,
		Type:   domain.DocTypeProfile,
		UserID: profile.UserID,
		Body:   body,
	})
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	doc, err := r.store.getItem(ctx, userID, domain.DocTypeProfile)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	var profile domain.Profile
	if err := json.Unmarshal(doc.Body, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
