package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arya/movie-mate-backend/internal/domain"
	"github.com/arya/movie-mate-backend/internal/service"
	"github.com/go-chi/chi/v5"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type UpdateProfileRequest struct {
	UserID            string   `json:"userId"`
	FavoriteDirectors []string `json:"favoriteDirectors"`
	Genres            []string `json:"genres"`
	FavoriteActors    []string `json:"favoriteActors"`
	FavoriteMovies    []string `json:"favoriteMovies"`
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		http.Error(w, "User ID is required", http.StatusBadRequest)
		return
	}

	profile, err := h.profileService.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.UserID == "" || req.FavoriteDirectors == nil || req.Genres == nil || req.FavoriteActors == nil {
		http.Error(w, "User ID, directors, genres and actors are required", http.StatusBadRequest)
		return
	}

	profile, err := h.profileService.Upsert(r.Context(), service.UpdateProfileInput{
		UserID:            req.UserID,
		FavoriteDirectors: req.FavoriteDirectors,
		Genres:            req.Genres,
		FavoriteActors:    req.FavoriteActors,
		FavoriteMovies:    req.FavoriteMovies,
	})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}
