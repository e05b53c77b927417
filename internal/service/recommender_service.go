package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/arya/movie-mate-backend/internal/config"
	"github.com/arya/movie-mate-backend/internal/domain"
	"github.com/arya/movie-mate-backend/internal/repository"
)

// whereToWatchFallback is returned when the upstream reply carries no usable
// "response" field.
const whereToWatchFallback = "No OTT platforms available."

// endOfTextSentinel is a trailing token the upstream language model appends
// to generated text; it is stripped before the reply reaches clients.
const endOfTextSentinel = "[end of text]"

// RecommenderService proxies calls to the external recommender and translates
// its JSON replies into domain shapes. Every call is a single attempt with no
// retry; failures surface as *domain.UpstreamError.
type RecommenderService struct {
	movieRepo  repository.MovieRepository
	baseURL    string
	httpClient *http.Client
}

func NewRecommenderService(movieRepo repository.MovieRepository, cfg *config.Config) *RecommenderService {
	return &RecommenderService{
		movieRepo: movieRepo,
		baseURL:   strings.TrimRight(cfg.RecommenderURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// RecommendInput is the filter payload forwarded to the recommender.
type RecommendInput struct {
	Movies       []domain.Movie `json:"movies"`
	YearRange    []int          `json:"year_range"`
	RuntimeRange []int          `json:"runtime_range"`
	Rating       *float64       `json:"rating"`
}

// ReasoningInput names the movies the recommender should explain.
type ReasoningInput struct {
	SelectedMovies    []string `json:"selected_movie"`
	RecommendedMovies []string `json:"recommended_movie"`
}

// FetchRecommendations forwards the seed movies and filters to the
// recommender. An unparseable or empty reply body yields an empty list rather
// than an error: a degraded recommender should look like "no matches", not an
// outage.
func (s *RecommenderService) FetchRecommendations(ctx context.Context, input *RecommendInput) ([]domain.Movie, error) {
	body, err := s.post(ctx, "/recommend", input)
	if err != nil {
		return nil, err
	}

	var movies []domain.Movie
	if err := json.Unmarshal(body, &movies); err != nil || movies == nil {
		return []domain.Movie{}, nil
	}
	return movies, nil
}

// Reasoning returns the upstream reply re-encoded as a JSON string literal.
// The frontend consumes the double-encoded form; see DESIGN.md before
// changing this.
func (s *RecommenderService) Reasoning(ctx context.Context, input *ReasoningInput) (string, error) {
	body, err := s.post(ctx, "/reasoning", input)
	if err != nil {
		return "", err
	}

	literal, err := json.Marshal(string(body))
	if err != nil {
		return "", err
	}
	return string(literal), nil
}

// WhereToWatch asks the upstream generator for streaming platforms carrying
// the given title. The generated text arrives in a "response" field with a
// trailing end-of-text sentinel; a missing or empty field yields the fixed
// fallback string.
func (s *RecommenderService) WhereToWatch(ctx context.Context, title string) (string, error) {
	body, err := s.post(ctx, "/generate", map[string]string{"title": title})
	if err != nil {
		return "", err
	}

	var reply struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(body, &reply); err != nil || reply.Response == "" {
		return whereToWatchFallback, nil
	}

	return strings.TrimSpace(strings.ReplaceAll(reply.Response, endOfTextSentinel, "")), nil
}

// RandomMovie picks a uniformly random movie from the catalog.
func (s *RecommenderService) RandomMovie(ctx context.Context) (*domain.Movie, error) {
	movies, err := s.movieRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, domain.ErrNoMovies
	}
	return movies[rand.Intn(len(movies))], nil
}

// post sends one JSON request to the recommender and reads the full reply
// body. Transport failures and non-2xx statuses both come back as
// *domain.UpstreamError.
func (s *RecommenderService) post(ctx context.Context, path string, payload any) ([]byte, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &domain.UpstreamError{Status: resp.StatusCode}
	}

	return io.ReadAll(resp.Body)
}
