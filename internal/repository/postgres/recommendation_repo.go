package postgres

import (
	"context"
	"encoding/json"

	"github.com/arya/movie-mate-backend/internal/domain"
	"gorm.io/gorm"
)

type recommendationRepository struct {
	store *documentStore
}

func NewRecommendationRepository(db *gorm.DB) *recommendationRepository {
	return &recommendationRepository{store: &documentStore{db: db}}
}

// Create appends a recommendation record. Records are immutable; there is no
// update or delete path.
func (r *recommendationRepository) Create(ctx context.Context, rec *domain.Recommendation) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return r.store.createItem(ctx, &Document{
		ID:        rec.ID,
		Type:      domain.DocTypeRecommendation,
		UserID:    rec.UserID,
		Body:      body,
		CreatedAt: rec.CreatedAt,
	})
}

func (r *recommendationRepository) GetByUserID(ctx context.Context, userID string) ([]*domain.Recommendation, error) {
	docs, err := r.store.queryByUserID(ctx, domain.DocTypeRecommendation, userID)
	if err != nil {
		return nil, err
	}

	recs := make([]*domain.Recommendation, 0, len(docs))
	for _, doc := range docs {
		var rec domain.Recommendation
		if err := json.Unmarshal(doc.Body, &rec); err != nil {
			return nil, err
		}
		recs = append(recs, &rec)
	}
	return recs, nil
}
