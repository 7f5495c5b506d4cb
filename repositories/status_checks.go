package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"widia-api/db"
	"widia-api/models"
)

type StatusCheckRepository struct {
	col *mongo.Collection
}

func NewStatusCheckRepository(d *mongo.Database) *StatusCheckRepository {
	return &StatusCheckRepository{col: d.Collection(db.CollectionStatusChecks)}
}

// Insert stores a status check as is.
func (r *StatusCheckRepository) Insert(ctx context.Context, s models.StatusCheck) error {
	_, err := r.col.InsertOne(ctx, s)
	return err
}

// ListRecent returns the newest limit status checks in insertion order.
func (r *StatusCheckRepository) ListRecent(ctx context.Context, limit int64) ([]models.StatusCheck, error) {
	return findRecent[models.StatusCheck](ctx, r.col, limit)
}
