package repository

import (
	"context"

	"github.com/arya/movie-mate-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type ProfileRepository interface {
	Upsert(ctx context.Context, profile *domain.Profile) error
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
}

type MovieRepository interface {
	UpsertMany(ctx context.Context, movies []*domain.Movie) error
	GetAll(ctx context.Context) ([]*domain.Movie, error)
}

type RecommendationRepository interface {
	Create(ctx context.Context, rec *domain.Recommendation) error
	GetByUserID(ctx context.Context, userID string) ([]*domain.Recommendation, error)
}

type Repositories struct {
	User           UserRepository
	Profile        ProfileRepository
	Movie          MovieRepository
	Recommendation RecommendationRepository
}
