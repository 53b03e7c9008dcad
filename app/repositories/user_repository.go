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

// UserRepository handles the users collection.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(col *mongo.Collection) *UserRepository {
	return &UserRepository{col: col}
}

// CreateIfAbsent inserts the user unless a document with the same email
// already exists. Returns the inserted id and created=true on insert, or
// (nil, false) when the email was already taken.
func (r *UserRepository) CreateIfAbsent(ctx context.Context, user models.User) (interface{}, bool, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	defer metrics.ObserveStoreOp("users", "createIfAbsent", time.Now())

	err := r.col.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return nil, false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, fmt.Errorf("users: lookup by email: %w", err)
	}

	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		return nil, false, fmt.Errorf("users: insert: %w", err)
	}
	return res.InsertedID, true, nil
}

// All returns every user document.
func (r *UserRepository) All(ctx context.Context) ([]models.User, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	defer metrics.ObserveStoreOp("users", "find", time.Now())

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("users: find: %w", err)
	}

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("users: decode: %w", err)
	}
	return users, nil
}

// FindByEmail looks up one user. Returns ErrNotFound when absent.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	defer metrics.ObserveStoreOp("users", "findOne", time.Now())

	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("users: findOne: %w", err)
	}
	return user, nil
}

// IsAdmin re-derives the admin flag from the store. An unknown email is
// simply not an admin.
func (r *UserRepository) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := r.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

// DeleteByID removes one user. ErrInvalidID on a malformed id, ErrNotFound
// when nothing matched.
func (r *UserRepository) DeleteByID(ctx context.Context, id string) (models.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()
	defer metrics.ObserveStoreOp("users", "deleteOne", time.Now())

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("users: delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.DeleteResult{}, ErrNotFound
	}
	return models.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// PromoteToAdmin sets role=admin on one user.
func (r *UserRepository) PromoteToAdmin(ctx context.Context, id string) (models.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()
	defer metrics.ObserveStoreOp("users", "updateOne", time.Now())

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"role": models.RoleAdmin}},
	)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("users: update: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.UpdateResult{}, ErrNotFound
	}
	return models.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// Count returns the estimated collection size.
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	return r.col.EstimatedDocumentCount(ctx)
}
