package postgres

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Document is a row in the shared document container. Records of every kind
// live in one table, discriminated by Type — the partition key. The body is
// the JSON encoding of the domain record; UserID is lifted out of the body so
// per-user queries stay indexable.
type Document struct {
	ID        string         `gorm:"primaryKey;size:255"`
	Type      string         `gorm:"primaryKey;size:32;index"`
	UserID    string         `gorm:"size:255;index"`
	Body      datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Document) TableName() string {
	return "documents"
}

// documentStore wraps the container-level operations shared by the typed
// repositories: create, upsert, point lookup, and predicate queries.
type documentStore struct {
	db *gorm.DB
}

func (s *documentStore) createItem(ctx context.Context, doc *Document) error {
	return s.db.WithContext(ctx).Create(doc).Error
}

func (s *documentStore) upsertItem(ctx context.Context, doc *Document) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}, {Name: "type"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "body", "updated_at"}),
	}).Create(doc).Error
}

func (s *documentStore) getItem(ctx context.Context, id, docType string) (*Document, error) {
	var doc Document
	err := s.db.WithContext(ctx).First(&doc, "id = ? AND type = ?", id, docType).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *documentStore) queryByUserID(ctx context.Context, docType, userID string) ([]Document, error) {
	var docs []Document
	err := s.db.WithContext(ctx).
		Where("type = ? AND user_id = ?", docType, userID).
		Order("created_at").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *documentStore) queryByType(ctx context.Context, docType string) ([]Document, error) {
	var docs []Document
	err := s.db.WithContext(ctx).Where("type = ?", docType).Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}
