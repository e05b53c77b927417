package service

import (
	"context"
	"errors"

	"github.com/arya/movie-mate-backend/internal/domain"
	"github.com/arya/movie-mate-backend/internal/repository"
	"github.com/arya/movie-mate-backend/internal/session"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo repository.UserRepository
	sessions session.Store
}

func NewAuthService(userRepo repository.UserRepository, sessions session.Store) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
	}
}

// Register creates a user with a bcrypt digest of the password. The plaintext
// is never stored. Returns domain.ErrUserExists for a duplicate id.
func (s *AuthService) Register(ctx context.Context, id, password string) (*domain.User, error) {
	existing, err := s.userRepo.GetByID(ctx, id)
	if err == nil && existing != nil {
		return nil, domain.ErrUserExists
	}
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           id,
		PasswordHash: string(hashedPassword),
		Type:         domain.DocTypeUser,
	}

	// The repository maps a duplicate key to ErrUserExists, which closes the
	// race between the existence check above and the insert.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and starts a session, returning its token.
func (s *AuthService) Login(ctx context.Context, id, password string) (string, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.sessions.Create(user.ID)
}

// CurrentUser resolves a session token to the logged-in user id, refreshing
// the session's idle timer.
func (s *AuthService) CurrentUser(token string) (string, error) {
	return s.sessions.Get(token)
}

// Logout ends the session. Logging out an already-ended session is a no-op.
func (s *AuthService) Logout(token string) {
	s.sessions.Delete(token)
}
