// Seed loads a movie-catalog JSON file into the document store so the random
// and recommender endpoints have data to work with.
//
// Usage: seed -file movies.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/arya/movie-mate-backend/internal/config"
	"github.com/arya/movie-mate-backend/internal/domain"
	"github.com/arya/movie-mate-backend/internal/repository/postgres"
)

func main() {
	file := flag.String("file", "movies.json", "path to a JSON array of movies")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("failed to read %s: %v", *file, err)
	}

	var movies []*domain.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		log.Fatalf("failed to parse %s: %v", *file, err)
	}

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	repos := postgres.NewRepositories(db)
	if err := repos.Movie.UpsertMany(context.Background(), movies); err != nil {
		log.Fatalf("failed to seed movies: %v", err)
	}

	log.Printf("Seeded %d movies from %s", len(movies), *file)
}
