package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/rasoi/app/models"
	"github.com/shashiranjanraj/rasoi/pkg/metrics"
)

// ReviewRepository handles the reviews collection. Reviews have no write
// path through the public surface.
type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(col *mongo.Collection) *ReviewRepository {
	return &ReviewRepository{col: col}
}

// All returns every review.
func (r *ReviewRepository) All(ctx context.Context) ([]models.Review, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	defer metrics.ObserveStoreOp("reviews", "find", time.Now())

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("reviews: find: %w", err)
	}

	reviews := []models.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("reviews: decode: %w", err)
	}
	return reviews, nil
}

// Seed bulk-inserts reviews; used only by the seed command.
func (r *ReviewRepository) Seed(ctx context.Context, reviews []models.Review) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	docs := make([]interface{}, len(reviews))
	for i, rev := range reviews {
		docs[i] = rev
	}
	_, err := r.col.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("reviews: seed: %w", err)
	}
	return nil
}
