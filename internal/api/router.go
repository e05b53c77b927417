package api

import (
	"net/http"

	"github.com/arya/movie-mate-backend/internal/api/handlers"
	"github.com/arya/movie-mate-backend/internal/api/middleware"
	"github.com/arya/movie-mate-backend/internal/config"
	"github.com/arya/movie-mate-backend/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost", "http://localhost:8080", cfg.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// The root and /home redirect browsers to the frontend.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/home", http.StatusFound)
	})
	r.Get("/home", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, cfg.FrontendURL, http.StatusFound)
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	profileHandler := handlers.NewProfileHandler(services.Profile)
	recommendationHandler := handlers.NewRecommendationHandler(services.Recommendation)
	recommenderHandler := handlers.NewRecommenderHandler(services.Recommender)

	r.Route("/api", func(r chi.Router) {
		// User and session routes
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/isvalid", authHandler.IsValid)
			})
		})

		// Taste profile routes
		r.Route("/profile", func(r chi.Router) {
			r.Get("/{id}", profileHandler.Get)
			r.Post("/{id}", profileHandler.Update)
		})

		// Stored recommendation routes
		r.Route("/recommendation", func(r chi.Router) {
			r.Post("/pull", recommendationHandler.Pull)
			r.Post("/push", recommendationHandler.Push)
		})

		// Recommender proxy routes
		r.Route("/recommender", func(r chi.Router) {
			r.Post("/recommend", recommenderHandler.Recommend)
			r.Post("/reasoning", recommenderHandler.Reasoning)
			r.Post("/where", recommenderHandler.Where)
			r.Get("/random", recommenderHandler.Random)
		})
	})

	return r
}
