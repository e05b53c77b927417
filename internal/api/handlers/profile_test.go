package handlers_test

import (
	"net/http"
	"testing"

	"github.com/arya/movie-mate-backend/internal/domain"
	"github.com/arya/movie-mate-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestProfileHandler_UpdateAndGet(t *testing.T) {
	ts := testutil.NewTestServer(t)

	update := map[string]interface{}{
		"userId":            "alice",
		"favoriteDirectors": []string{"Mann"},
		"genres":            []string{"Thriller"},
		"favoriteActors":    []string{"De Niro"},
		"favoriteMovies":    []string{"Heat"},
	}

	resp := postJSON(t, ts.APIURL("/profile/alice"), update)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	getResp, err := http.Get(ts.APIURL("/profile/alice"))
	if err != nil {
		t.Fatalf("failed to get profile: %v", err)
	}
	defer getResp.Body.Close()
	testutil.AssertStatusCode(t, getResp, http.StatusOK)

	var profile domain.Profile
	testutil.AssertJSONResponse(t, getResp, &profile)
	assert.Equal(t, "alice", profile.UserID)
	assert.Equal(t, []string{"Mann"}, profile.FavoriteDirectors)
	assert.Equal(t, []string{"Heat"}, profile.FavoriteMovies)
	assert.Equal(t, domain.DocTypeProfile, profile.Type)
}

func TestProfileHandler_UpdateReplacesWholesale(t *testing.T) {
	ts := testutil.NewTestServer(t)

	first := map[string]interface{}{
		"userId":            "alice",
		"favoriteDirectors": []string{"Mann"},
		"genres":            []string{"Thriller"},
		"favoriteActors":    []string{"De Niro"},
	}
	resp := postJSON(t, ts.APIURL("/profile/alice"), first)
	resp.Body.Close()

	second := map[string]interface{}{
		"userId":            "alice",
		"favoriteDirectors": []string{"Kubrick"},
		"genres":            []string{"Sci-Fi"},
		"favoriteActors":    []string{"Dullea"},
	}
	resp = postJSON(t, ts.APIURL("/profile/alice"), second)
	resp.Body.Close()

	getResp, err := http.Get(ts.APIURL("/profile/alice"))
	if err != nil {
		t.Fatalf("failed to get profile: %v", err)
	}
	defer getResp.Body.Close()

	var profile domain.Profile
	testutil.AssertJSONResponse(t, getResp, &profile)
	assert.Equal(t, []string{"Kubrick"}, profile.FavoriteDirectors)
	assert.Equal(t, []string{"Sci-Fi"}, profile.Genres)
}

func TestProfileHandler_Validation(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name    string
		request map[string]interface{}
	}{
		{
			name: "missing user id",
			request: map[string]interface{}{
				"favoriteDirectors": []string{"Mann"},
				"genres":            []string{"Thriller"},
				"favoriteActors":    []string{"De Niro"},
			},
		},
		{
			name: "missing directors",
			request: map[string]interface{}{
				"userId":         "alice",
				"genres":         []string{"Thriller"},
				"favoriteActors": []string{"De Niro"},
			},
		},
		{
			name: "missing genres",
			request: map[string]interface{}{
				"userId":            "alice",
				"favoriteDirectors": []string{"Mann"},
				"favoriteActors":    []string{"De Niro"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.APIURL("/profile/alice"), tt.request)
			defer resp.Body.Close()
			testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
		})
	}
}

func TestProfileHandler_GetMissing(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.APIURL("/profile/nobody"))
	if err != nil {
		t.Fatalf("failed to get profile: %v", err)
	}
	defer resp.Body.Close()
	testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Profile not found")
}
