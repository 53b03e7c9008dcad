package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/rasoi/app/models"
	"github.com/shashiranjanraj/rasoi/internal/store"
	"github.com/shashiranjanraj/rasoi/pkg/metrics"
)

// PaymentRepository handles the payments collection and its aggregations.
type PaymentRepository struct {
	col *mongo.Collection
}

func NewPaymentRepository(col *mongo.Collection) *PaymentRepository {
	return &PaymentRepository{col: col}
}

// Create inserts a payment record. Payments are immutable once created.
func (r *PaymentRepository) Create(ctx context.Context, payment models.Payment) (models.InsertResult, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	defer metrics.ObserveStoreOp("payments", "insertOne", time.Now())

	res, err := r.col.InsertOne(ctx, payment)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("payments: insert: %w", err)
	}
	return models.InsertResult{InsertedID: res.InsertedID}, nil
}

// AllByEmail returns the payment history for one email.
func (r *PaymentRepository) AllByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	defer metrics.ObserveStoreOp("payments", "find", time.Now())

	cur, err := r.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("payments: find: %w", err)
	}

	payments := []models.Payment{}
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("payments: decode: %w", err)
	}
	return payments, nil
}

// Count returns the estimated number of payments (orders).
func (r *PaymentRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	return r.col.EstimatedDocumentCount(ctx)
}

// TotalRevenue sums the price of every payment. Returns 0 when the
// collection is empty.
func (r *PaymentRepository) TotalRevenue(ctx context.Context) (float64, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	defer metrics.ObserveStoreOp("payments", "aggregate", time.Now())

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("payments: revenue aggregate: %w", err)
	}

	var rows []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("payments: revenue decode: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].TotalRevenue, nil
}

// CategoryStats joins every purchased menu item id to its menu document and
// accumulates a count and price sum per category. Item ids are unwound per
// occurrence, so a payment referencing the same id twice contributes twice.
func (r *PaymentRepository) CategoryStats(ctx context.Context) ([]models.CategoryStat, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	defer metrics.ObserveStoreOp("payments", "aggregate", time.Now())

	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$menuItemIds"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: store.ColMenu},
			{Key: "localField", Value: "menuItemIds"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "menuItems"},
		}}},
		{{Key: "$unwind", Value: "$menuItems"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$menuItems.category"},
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$menuItems.price"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "quantity", Value: "$quantity"},
			{Key: "revenue", Value: "$revenue"},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("payments: category aggregate: %w", err)
	}

	stats := []models.CategoryStat{}
	if err := cur.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("payments: category decode: %w", err)
	}
	return stats, nil
}
