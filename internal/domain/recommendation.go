package domain

import "time"

// DocTypeRecommendation is the partition discriminator for recommendation documents.
const DocTypeRecommendation = "recommendation"

// Recommendation is an append-only record of movies recommended to a user.
// Records are never updated or deleted after creation.
type Recommendation struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Movies    []Movie   `json:"movies"`
	CreatedAt time.Time `json:"created_at"`
	Type      string    `json:"type"`
}
