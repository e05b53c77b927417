package service

import (
	"github.com/arya/movie-mate-backend/internal/config"
	"github.com/arya/movie-mate-backend/internal/repository"
	"github.com/arya/movie-mate-backend/internal/session"
)

type Services struct {
	Auth           *AuthService
	Profile        *ProfileService
	Recommendation *RecommendationService
	Recommender    *RecommenderService
}

func NewServices(repos *repository.Repositories, sessions session.Store, cfg *config.Config) *Services {
	return &Services{
		Auth:           NewAuthService(repos.User, sessions),
		Profile:        NewProfileService(repos.Profile),
		Recommendation: NewRecommendationService(repos.Recommendation),
		Recommender:    NewRecommenderService(repos.Movie, cfg),
	}
}
