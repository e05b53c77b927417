package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/arya/movie-mate-backend/internal/domain"
	"github.com/arya/movie-mate-backend/internal/service"
)

type RecommenderHandler struct {
	recommenderService *service.RecommenderService
}

func NewRecommenderHandler(recommenderService *service.RecommenderService) *RecommenderHandler {
	return &RecommenderHandler{recommenderService: recommenderService}
}

type WhereToWatchRequest struct {
	Title string `json:"title"`
}

func (h *RecommenderHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req service.RecommendInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	movies, err := h.recommenderService.FetchRecommendations(r.Context(), &req)
	if err != nil {
		writeUpstreamError(w, "recommend", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(movies)
}

func (h *RecommenderHandler) Reasoning(w http.ResponseWriter, r *http.Request) {
	var req service.ReasoningInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.SelectedMovies == nil || req.RecommendedMovies == nil {
		http.Error(w, "Selected and recommended movies are required", http.StatusBadRequest)
		return
	}

	reasoning, err := h.recommenderService.Reasoning(r.Context(), &req)
	if err != nil {
		writeUpstreamError(w, "reasoning", err)
		return
	}

	// The service already produced a JSON string literal; write it verbatim.
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(reasoning))
}

func (h *RecommenderHandler) Where(w http.ResponseWriter, r *http.Request) {
	var req WhereToWatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Title == "" {
		http.Error(w, "Movie title is required", http.StatusBadRequest)
		return
	}

	platforms, err := h.recommenderService.WhereToWatch(r.Context(), req.Title)
	if err != nil {
		writeUpstreamError(w, "where", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(platforms)
}

func (h *RecommenderHandler) Random(w http.ResponseWriter, r *http.Request) {
	movie, err := h.recommenderService.RandomMovie(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoMovies) {
			http.Error(w, "No movies found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(movie)
}

func writeUpstreamError(w http.ResponseWriter, op string, err error) {
	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		log.Printf("ERROR [handlers.Recommender] %s upstream call failed: %v", op, err)
		http.Error(w, "Recommender service unavailable", http.StatusBadGateway)
		return
	}
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
