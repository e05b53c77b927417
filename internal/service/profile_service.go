package service

import (
	"context"

	"github.com/arya/movie-mate-backend/internal/domain"
	"github.com/arya/movie-mate-backend/internal/repository"
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// UpdateProfileInput is the full replacement state for a user's profile.
type UpdateProfileInput struct {
	UserID            string
	FavoriteDirectors []string
	Genres            []string
	FavoriteActors    []string
	FavoriteMovies    []string
}

// Upsert replaces the user's profile wholesale. Last write wins; there is no
// merge or conflict detection.
func (s *ProfileService) Upsert(ctx context.Context, input UpdateProfileInput) (*domain.Profile, error) {
	profile := &domain.Profile{
		UserID:            input.UserID,
		FavoriteDirectors: input.FavoriteDirectors,
		Genres:            input.Genres,
		FavoriteActors:    input.FavoriteActors,
		FavoriteMovies:    input.FavoriteMovies,
		Type:              domain.DocTypeProfile,
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}
