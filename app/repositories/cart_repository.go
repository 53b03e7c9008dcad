package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/rasoi/app/models"
	"github.com/shashiranjanraj/rasoi/pkg/metrics"
)

// CartRepository handles the carts collection.
type CartRepository struct {
	col *mongo.Collection
}

func NewCartRepository(col *mongo.Collection) *CartRepository {
	return &CartRepository{col: col}
}

// Create inserts a cart item.
func (r *CartRepository) Create(ctx context.Context, item models.CartItem) (models.InsertResult, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	defer metrics.ObserveStoreOp("carts", "insertOne", time.Now())

	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("carts: insert: %w", err)
	}
	return models.InsertResult{InsertedID: res.InsertedID}, nil
}

// AllByEmail returns the cart items owned by email.
func (r *CartRepository) AllByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	defer metrics.ObserveStoreOp("carts", "find", time.Now())

	cur, err := r.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("carts: find: %w", err)
	}

	items := []models.CartItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("carts: decode: %w", err)
	}
	return items, nil
}

// DeleteByID removes one cart item.
func (r *CartRepository) DeleteByID(ctx context.Context, id string) (models.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()
	defer metrics.ObserveStoreOp("carts", "deleteOne", time.Now())

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("carts: delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.DeleteResult{}, ErrNotFound
	}
	return models.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// DeleteManyByIDs bulk-removes the cart items purchased by a payment.
func (r *CartRepository) DeleteManyByIDs(ctx context.Context, ids []primitive.ObjectID) (models.DeleteResult, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	defer metrics.ObserveStoreOp("carts", "deleteMany", time.Now())

	res, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("carts: deleteMany: %w", err)
	}
	return models.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
