package service_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arya/movie-mate-backend/internal/domain"
	"github.com/arya/movie-mate-backend/internal/repository/postgres"
	"github.com/arya/movie-mate-backend/internal/service"
	"github.com/arya/movie-mate-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newProxy wires a RecommenderService against a fake upstream. The movie
// repository is only needed by RandomMovie, which has its own tests below.
func newProxy(upstreamURL string) *service.RecommenderService {
	cfg := testutil.TestConfig()
	cfg.RecommenderURL = upstreamURL
	return service.NewRecommenderService(nil, cfg)
}

func TestRecommenderService_FetchRecommendations(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		status     int
		body       string
		wantMovies int
		wantStatus int // non-zero means an UpstreamError with this status
	}{
		{
			name:       "successful response",
			status:     http.StatusOK,
			body:       `[{"id":"m1","title":"Heat"},{"id":"m2","title":"Ronin"}]`,
			wantMovies: 2,
		},
		{
			name:       "empty array is not an error",
			status:     http.StatusOK,
			body:       `[]`,
			wantMovies: 0,
		},
		{
			name:       "empty body falls back to empty list",
			status:     http.StatusOK,
			body:       ``,
			wantMovies: 0,
		},
		{
			name:       "unparseable body falls back to empty list",
			status:     http.StatusOK,
			body:       `{"error":"not a list"}`,
			wantMovies: 0,
		},
		{
			name:       "upstream failure propagates",
			status:     http.StatusInternalServerError,
			body:       `boom`,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "upstream rejection propagates",
			status:     http.StatusUnprocessableEntity,
			body:       `{}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/recommend", r.URL.Path)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer upstream.Close()

			proxy := newProxy(upstream.URL)
			movies, err := proxy.FetchRecommendations(ctx, &service.RecommendInput{
				Movies:       []domain.Movie{{ID: "seed", Title: "Seed Movie"}},
				YearRange:    []int{1990, 2010},
				RuntimeRange: []int{90, 180},
			})

			if tt.wantStatus != 0 {
				var upstreamErr *domain.UpstreamError
				require.ErrorAs(t, err, &upstreamErr)
				assert.Equal(t, tt.wantStatus, upstreamErr.Status)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, movies, "a degraded upstream yields an empty list, never nil")
			assert.Len(t, movies, tt.wantMovies)
		})
	}
}

func TestRecommenderService_FetchRecommendationsForwardsFilters(t *testing.T) {
	var received map[string]json.RawMessage
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &received))
		w.Write([]byte(`[]`))
	}))
	defer upstream.Close()

	rating := 7.0
	proxy := newProxy(upstream.URL)
	_, err := proxy.FetchRecommendations(context.Background(), &service.RecommendInput{
		Movies:       []domain.Movie{{ID: "m1"}},
		YearRange:    []int{2000, 2020},
		RuntimeRange: []int{80, 160},
		Rating:       &rating,
	})
	require.NoError(t, err)

	for _, field := range []string{"movies", "year_range", "runtime_range", "rating"} {
		assert.Contains(t, received, field)
	}
}

func TestRecommenderService_Reasoning(t *testing.T) {
	upstreamBody := `{"reason":"Both are heist thrillers."}`
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reasoning", r.URL.Path)
		w.Write([]byte(upstreamBody))
	}))
	defer upstream.Close()

	proxy := newProxy(upstream.URL)
	reasoning, err := proxy.Reasoning(context.Background(), &service.ReasoningInput{
		SelectedMovies:    []string{"Heat"},
		RecommendedMovies: []string{"Ronin"},
	})
	require.NoError(t, err)

	// The raw body comes back re-encoded as a JSON string literal; decoding
	// the literal must restore the original body exactly.
	var decoded string
	require.NoError(t, json.Unmarshal([]byte(reasoning), &decoded))
	assert.Equal(t, upstreamBody, decoded)
}

func TestRecommenderService_ReasoningUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	proxy := newProxy(upstream.URL)
	_, err := proxy.Reasoning(context.Background(), &service.ReasoningInput{
		SelectedMovies:    []string{"Heat"},
		RecommendedMovies: []string{"Ronin"},
	})

	var upstreamErr *domain.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusBadGateway, upstreamErr.Status)
}

func TestRecommenderService_WhereToWatch(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "strips sentinel and whitespace",
			body: `{"response":"Netflix[end of text]  "}`,
			want: "Netflix",
		},
		{
			name: "plain response passes through",
			body: `{"response":"Netflix, Amazon Prime"}`,
			want: "Netflix, Amazon Prime",
		},
		{
			name: "missing field yields fallback",
			body: `{}`,
			want: "No OTT platforms available.",
		},
		{
			name: "empty field yields fallback",
			body: `{"response":""}`,
			want: "No OTT platforms available.",
		},
		{
			name: "unparseable body yields fallback",
			body: `not json`,
			want: "No OTT platforms available.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/generate", r.URL.Path)
				w.Write([]byte(tt.body))
			}))
			defer upstream.Close()

			proxy := newProxy(upstream.URL)
			got, err := proxy.WhereToWatch(ctx, "Heat")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecommenderService_TransportFailure(t *testing.T) {
	// A server that is already closed forces a connection error.
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	proxy := newProxy(upstream.URL)
	_, err := proxy.WhereToWatch(context.Background(), "Heat")

	var upstreamErr *domain.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Zero(t, upstreamErr.Status)
	assert.Error(t, upstreamErr.Err)
}

func TestRecommenderService_RandomMovie(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	proxy := service.NewRecommenderService(repos.Movie, testutil.TestConfig())
	ctx := context.Background()

	t.Run("empty catalog", func(t *testing.T) {
		testDB.Truncate(t)

		_, err := proxy.RandomMovie(ctx)
		assert.ErrorIs(t, err, domain.ErrNoMovies)
	})

	t.Run("covers the whole catalog", func(t *testing.T) {
		testDB.Truncate(t)
		testutil.SeedMovies(t, repos, 3)

		seen := make(map[string]bool)
		for i := 0; i < 200 && len(seen) < 3; i++ {
			movie, err := proxy.RandomMovie(ctx)
			require.NoError(t, err)
			seen[movie.ID] = true
		}
		assert.Len(t, seen, 3, "repeated picks should eventually return every movie")
	})
}
