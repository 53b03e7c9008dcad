// Package models defines the documents stored in MongoDB and the result
// shapes the API returns for writes.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleAdmin is the only privileged role. Absence of a role means a regular
// user.
const RoleAdmin = "admin"

// User is keyed by email; a user document is created on first sign-in if
// not already present.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// MenuItem is a dish on the menu. Written only by admins, read by anyone.
type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Category string             `bson:"category" json:"category"`
	Price    float64            `bson:"price" json:"price"`
	Recipe   string             `bson:"recipe" json:"recipe"`
	Image    string             `bson:"image" json:"image"`
}

// Review is read-only through the public surface.
type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Details string             `bson:"details" json:"details"`
	Rating  float64            `bson:"rating" json:"rating"`
}

// CartItem is owned by the email that created it.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	MenuItemID string             `bson:"menuItemId" json:"menuItemId"`
	Name       string             `bson:"name" json:"name"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Price      float64            `bson:"price" json:"price"`
}

// Payment is created once per checkout and immutable afterward. The id
// lists are stored as ObjectIDs so the order-stats lookup joins against the
// menu collection correctly.
type Payment struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string               `bson:"email" json:"email"`
	Price         float64              `bson:"price" json:"price"`
	TransactionID string               `bson:"transactionId" json:"transactionId"`
	Date          time.Time            `bson:"date" json:"date"`
	CartIDs       []primitive.ObjectID `bson:"cartIds" json:"cartIds"`
	MenuItemIDs   []primitive.ObjectID `bson:"menuItemIds" json:"menuItemIds"`
	Status        string               `bson:"status,omitempty" json:"status,omitempty"`
}

// AdminStats is the aggregate report for the dashboard.
type AdminStats struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

// CategoryStat is one row of the order-stats report.
type CategoryStat struct {
	Category string  `bson:"category" json:"category"`
	Quantity int64   `bson:"quantity" json:"quantity"`
	Revenue  float64 `bson:"revenue" json:"revenue"`
}

// InsertResult mirrors the store's insert acknowledgement. InsertedID is
// null when a conditional insert found an existing document.
type InsertResult struct {
	InsertedID interface{} `json:"insertedId"`
	Message    string      `json:"message,omitempty"`
}

// UpdateResult mirrors the store's update acknowledgement.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult mirrors the store's delete acknowledgement.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
