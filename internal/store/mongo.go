// Package store owns the single long-lived MongoDB client. The client is
// created once at startup and injected into repositories; it is safe for
// concurrent use by all request goroutines.
package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/rasoi/config"
)

// Collection names.
const (
	ColUsers    = "users"
	ColMenu     = "menu"
	ColReviews  = "reviews"
	ColCarts    = "carts"
	ColPayments = "payments"
	ColLogs     = "logs"
)

// Store bundles the Mongo client and database handle.
type Store struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// Connect dials MongoDB with the configured URI, verifies the connection
// with a ping, and returns the shared handle.
func Connect(ctx context.Context) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Client().ApplyURI(config.MongoURI()).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(50)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	return &Store{
		Client: client,
		DB:     client.Database(config.MongoDB()),
	}, nil
}

// Collection returns a handle on the named collection.
func (s *Store) Collection(name string) *mongo.Collection {
	return s.DB.Collection(name)
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.Client.Disconnect(ctx)
}
