package postgres

import (
	"context"
	"encoding/json"

	"github.com/arya/movie-mate-backend/internal/domain"
	"gorm.io/gorm"
)

type movieRepository struct {
	store *documentStore
}

func NewMovieRepository(db *gorm.DB) *movieRepository {
	return &movieRepository{store: &documentStore{db: db}}
}

func (r *movieRepository) UpsertMany(ctx context.Context, movies []*domain.Movie) error {
	for _, movie := range movies {
		body, err := json.Marshal(movie)
		if err != nil {
			return err
		}

		err = r.store.upsertItem(ctx, &Document{
			ID:   movie.ID,
			Type: domain.DocTypeMovie,
			Body: body,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// GetAll scans the whole movie partition. The catalog is small enough that
// the random-pick endpoint reads it in full, same as the profile queries do.
func (r *movieRepository) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	docs, err := r.store.queryByType(ctx, domain.DocTypeMovie)
	if err != nil {
		return nil, err
	}

	movies := make([]*domain.Movie, 0, len(docs))
	for _, doc := range docs {
		var movie domain.Movie
		if err := json.Unmarshal(doc.Body, &movie); err != nil {
			return nil, err
		}
		movies = append(movies, &movie)
	}
	return movies, nil
}
