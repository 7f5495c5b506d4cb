package repositories

import (
	"context"
	"slices"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// findRecent returns at most limit documents, newest first by timestamp on
// the server side, reversed so callers get them in insertion order.
func findRecent[T any](ctx context.Context, col *mongo.Collection, limit int64) ([]T, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{"_id": 0})

	cur, err := col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := make([]T, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	if limit > 0 && int64(len(items)) > limit {
		items = items[:limit]
	}
	slices.Reverse(items)
	return items, nil
}
