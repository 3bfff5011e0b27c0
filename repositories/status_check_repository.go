package repositories

import (
	"context"
	"fmt"

	"github.com/harishcmuthyala/app/database"
	"github.com/harishcmuthyala/app/models"
)

// StatusCheckRepository interface defines status check persistence
type StatusCheckRepository interface {
	Insert(ctx context.Context, check *models.StatusCheck) error
	List(ctx context.Context, limit int) ([]models.StatusCheck, error)
}

// statusCheckRepository implements StatusCheckRepository interface
type statusCheckRepository struct {
	coll database.Collection
}

// NewStatusCheckRepository creates a new status check repository
func NewStatusCheckRepository(coll database.Collection) StatusCheckRepository {
	return &statusCheckRepository{coll: coll}
}

// Insert stores a status check with its timestamp serialized
func (r *statusCheckRepository) Insert(ctx context.Context, check *models.StatusCheck) error {
	return r.coll.InsertOne(ctx, statusCheckToDocument(check))
}

// List retrieves up to limit status checks
func (r *statusCheckRepository) List(ctx context.Context, limit int) ([]models.StatusCheck, error) {
	docs, err := r.coll.Find(ctx, limit)
	if err != nil {
		return nil, err
	}

	checks := make([]models.StatusCheck, 0, len(docs))
	for _, doc := range docs {
		check, err := statusCheckFromDocument(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to decode status check: %w", err)
		}
		checks = append(checks, *check)
	}

	return checks, nil
}

func statusCheckToDocument(check *models.StatusCheck) database.Document {
	return database.Document{
		"id":          check.ID,
		"client_name": check.ClientName,
		"timestamp":   models.FormatTimestamp(check.Timestamp),
	}
}

func statusCheckFromDocument(doc database.Document) (*models.StatusCheck, error) {
	var (
		check models.StatusCheck
		err   error
	)

	if check.ID, err = stringField(doc, "id"); err != nil {
		return nil, err
	}
	if check.ClientName, err = stringField(doc, "client_name"); err != nil {
		return nil, err
	}
	if check.Timestamp, err = timeField(doc, "timestamp"); err != nil {
		return nil, err
	}

	return &check, nil
}
