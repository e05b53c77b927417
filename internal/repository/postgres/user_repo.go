package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/arya/movie-mate-backend/internal/domain"
	"gorm.io/gorm"
)

// userDocument is the stored shape of a user record. The hash lives in the
// document body under "password"; domain.User keeps it out of API encodings.
type userDocument struct {
	ID       string `json:"id"`
	Password string `json:"password"`
	Type     string `json:"type"`
}

type userRepository struct {
	store *documentStore
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{store: &documentStore{db: db}}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	body, err := json.Marshal(userDocument{
		ID:       user.ID,
		Password: user.PasswordHash,
		Type:     user.Type,
	})
	if err != nil {
		return err
	}

	err = r.store.createItem(ctx, &Document{
		ID:     user.ID,
		Type:   domain.DocTypeUser,
		UserID: user.ID,
		Body:   body,
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrUserExists
	}
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	doc, err := r.store.getItem(ctx, id, domain.DocTypeUser)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	var stored userDocument
	if err := json.Unmarshal(doc.Body, &stored); err != nil {
		return nil, err
	}

	return &domain.User{
		ID:           stored.ID,
		PasswordHash: stored.Password,
		Type:         stored.Type,
	}, nil
}
