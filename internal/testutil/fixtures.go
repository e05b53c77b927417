package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/arya/movie-mate-backend/internal/domain"
	"github.com/arya/movie-mate-backend/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	id       string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		id:       fmt.Sprintf("testuser_%s", uuid.New().String()[:8]),
		password: "testpassword123",
	}
}

// WithID sets the user id
func (b *UserBuilder) WithID(id string) *UserBuilder {
	b.id = id
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the store and returns it with the raw password
func (b *UserBuilder) Build(t *testing.T, repos *repository.Repositories) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           b.id,
		PasswordHash: string(hashedPassword),
		Type:         domain.DocTypeUser,
	}

	if err := repos.User.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// LoginResponse matches the API login response
type LoginResponse struct {
	Token string `json:"token"`
}

// BuildAndLogin creates a user directly and logs it in via the API,
// returning the user and its session token
func (b *UserBuilder) BuildAndLogin(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, password := b.Build(t, ts.Repos)

	reqBody := map[string]string{
		"id":       user.ID,
		"password": password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/user/login"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to log in user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var loginResp LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	return user, loginResp.Token
}

// SeedMovies creates n catalog movies and returns them
func SeedMovies(t *testing.T, repos *repository.Repositories, n int) []*domain.Movie {
	t.Helper()

	movies := make([]*domain.Movie, 0, n)
	for i := 0; i < n; i++ {
		movies = append(movies, &domain.Movie{
			ID:           fmt.Sprintf("movie-%d", i),
			Title:        fmt.Sprintf("Test Movie %d", i),
			Description:  "A movie used in tests",
			ImdbRating:   "7.5",
			Stars:        []string{"Star One", "Star Two"},
			ReleasedYear: "2001",
			Runtime:      "120 min",
			Genres:       []string{"Drama"},
			Director:     "Test Director",
		})
	}

	if err := repos.Movie.UpsertMany(context.Background(), movies); err != nil {
		t.Fatalf("failed to seed movies: %v", err)
	}

	return movies
}
