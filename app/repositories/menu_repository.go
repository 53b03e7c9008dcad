package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/rasoi/app/models"
	"github.com/shashiranjanraj/rasoi/pkg/metrics"
)

// MenuRepository handles the menu collection.
type MenuRepository struct {
	col *mongo.Collection
}

func NewMenuRepository(col *mongo.Collection) *MenuRepository {
	return &MenuRepository{col: col}
}

// All returns every menu item.
func (r *MenuRepository) All(ctx context.Context) ([]models.MenuItem, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	defer metrics.ObserveStoreOp("menu", "find", time.Now())

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("menu: find: %w", err)
	}

	items := []models.MenuItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("menu: decode: %w", err)
	}
	return items, nil
}

// FindByID returns one menu item.
func (r *MenuRepository) FindByID(ctx context.Context, id string) (models.MenuItem, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.MenuItem{}, err
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()
	defer metrics.ObserveStoreOp("menu", "findOne", time.Now())

	var item models.MenuItem
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.MenuItem{}, ErrNotFound
	}
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("menu: findOne: %w", err)
	}
	return item, nil
}

// Create inserts a menu item.
func (r *MenuRepository) Create(ctx context.Context, item models.MenuItem) (models.InsertResult, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	defer metrics.ObserveStoreOp("menu", "insertOne", time.Now())

	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("menu: insert: %w", err)
	}
	return models.InsertResult{InsertedID: res.InsertedID}, nil
}

// UpdateByID replaces the editable fields of one menu item.
func (r *MenuRepository) UpdateByID(ctx context.Context, id string, item models.MenuItem) (models.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()
	defer metrics.ObserveStoreOp("menu", "updateOne", time.Now())

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"name":     item.Name,
			"category": item.Category,
			"price":    item.Price,
			"recipe":   item.Recipe,
			"image":    item.Image,
		}},
	)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("menu: update: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.UpdateResult{}, ErrNotFound
	}
	return models.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// DeleteByID removes one menu item.
func (r *MenuRepository) DeleteByID(ctx context.Context, id string) (models.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()
	defer metrics.ObserveStoreOp("menu", "deleteOne", time.Now())

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("menu: delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.DeleteResult{}, ErrNotFound
	}
	return models.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// Count returns the estimated collection size.
func (r *MenuRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	return r.col.EstimatedDocumentCount(ctx)
}
