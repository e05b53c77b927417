package service

import (
	"context"
	"time"

	"github.com/arya/movie-mate-backend/internal/domain"
	"github.com/arya/movie-mate-backend/internal/repository"
	"github.com/google/uuid"
)

type RecommendationService struct {
	recRepo repository.RecommendationRepository
}

func NewRecommendationService(recRepo repository.RecommendationRepository) *RecommendationService {
	return &RecommendationService{recRepo: recRepo}
}

// Create appends an immutable recommendation record for the user.
func (s *RecommendationService) Create(ctx context.Context, userID string, movies []domain.Movie) (*domain.Recommendation, error) {
	rec := &domain.Recommendation{
		ID:        uuid.New().String(),
		UserID:    userID,
		Movies:    movies,
		CreatedAt: time.Now().UTC(),
		Type:      domain.DocTypeRecommendation,
	}

	if err := s.recRepo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *RecommendationService) GetByUser(ctx context.Context, userID string) ([]*domain.Recommendation, error) {
	return s.recRepo.GetByUserID(ctx, userID)
}
