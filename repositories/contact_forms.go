package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"widia-api/db"
	"widia-api/models"
)

type ContactFormRepository struct {
	col *mongo.Collection
}

func NewContactFormRepository(d *mongo.Database) *ContactFormRepository {
	return &ContactFormRepository{col: d.Collection(db.CollectionContactForms)}
}

func (r *ContactFormRepository) Insert(ctx context.Context, f models.ContactForm) error {
	_, err := r.col.InsertOne(ctx, f)
	return err
}

// ListRecent is used by the checkdb tool to dump submissions.
func (r *ContactFormRepository) ListRecent(ctx context.Context, limit int64) ([]models.ContactForm, error) {
	return findRecent[models.ContactForm](ctx, r.col, limit)
}
