package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arya/movie-mate-backend/internal/api/middleware"
	"github.com/arya/movie-mate-backend/internal/domain"
	"github.com/arya/movie-mate-backend/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

type LoginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" || req.Password == "" {
		http.Error(w, "ID and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.authService.Register(r.Context(), req.ID, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			http.Error(w, "User already exists", http.StatusConflict)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// The stored record carries the password hash; only id and type go over
	// the wire.
	resp := UserResponse{
		ID:   user.ID,
		Type: user.Type,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" || req.Password == "" {
		http.Error(w, "ID and password are required", http.StatusBadRequest)
		return
	}

	token, err := h.authService.Login(r.Context(), req.ID, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidCredentials) {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LoginResponse{Token: token})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.BearerToken(r)
	if !ok {
		http.Error(w, "No active session", http.StatusBadRequest)
		return
	}

	// Ending an already-ended session is fine; logout is idempotent.
	h.authService.Logout(token)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

func (h *AuthHandler) IsValid(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"userId": userID})
}
