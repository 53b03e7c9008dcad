// Package services holds the application logic that spans more than one
// repository or talks to an external collaborator.
package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/rasoi/app/models"
	"github.com/shashiranjanraj/rasoi/config"
	"github.com/shashiranjanraj/rasoi/pkg/httpx"
	"github.com/shashiranjanraj/rasoi/pkg/logger"
	"github.com/shashiranjanraj/rasoi/pkg/metrics"
)

// MinorUnits converts a decimal currency amount to the integer minor-unit
// amount the gateway expects (cents). Truncates, matching parseInt semantics
// on the client side.
func MinorUnits(price float64) int64 {
	return int64(price * 100)
}

// paymentStore is the slice of PaymentRepository the service needs.
type paymentStore interface {
	Create(ctx context.Context, payment models.Payment) (models.InsertResult, error)
}

// cartPurger is the slice of CartRepository the service needs.
type cartPurger interface {
	DeleteManyByIDs(ctx context.Context, ids []primitive.ObjectID) (models.DeleteResult, error)
}

// PaymentService wraps the payment gateway and the record-then-purge
// checkout sequence.
type PaymentService struct {
	payments paymentStore
	carts    cartPurger
}

func NewPaymentService(payments paymentStore, carts cartPurger) *PaymentService {
	return &PaymentService{payments: payments, carts: carts}
}

// CreateIntent asks the gateway for a card payment intent over the given
// price and returns its client secret.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(MinorUnits(price), 10))
	form.Set("currency", "usd")
	form.Set("payment_method_types[]", "card")

	resp, err := httpx.Post(config.StripeAPIBase()+"/payment_intents").
		Bearer(config.StripeSecretKey()).
		Form(form).
		Timeout(15 * time.Second).
		WithContext(ctx).
		Send()
	if err != nil {
		metrics.GatewayCalls.WithLabelValues("failure").Inc()
		return "", fmt.Errorf("gateway: create intent: %w", err)
	}
	if err := resp.Throw(); err != nil {
		metrics.GatewayCalls.WithLabelValues("failure").Inc()
		return "", fmt.Errorf("gateway: create intent: %w", err)
	}

	var intent struct {
		ClientSecret string `json:"client_secret"`
	}
	if err := resp.JSON(&intent); err != nil {
		metrics.GatewayCalls.WithLabelValues("failure").Inc()
		return "", fmt.Errorf("gateway: create intent: %w", err)
	}

	metrics.GatewayCalls.WithLabelValues("success").Inc()
	return intent.ClientSecret, nil
}

// RecordResult bundles the two acknowledgements of a recorded payment.
type RecordResult struct {
	PaymentResult models.InsertResult `json:"paymentResult"`
	DeleteResult  models.DeleteResult `json:"deleteResult"`
}

// RecordPayment inserts the payment document, then purges every cart item
// named in its cart-id list. The two steps are not wrapped in a
// transaction: a purge failure after a successful insert leaves the cart
// items behind and is reported as an error without compensation.
func (s *PaymentService) RecordPayment(ctx context.Context, payment models.Payment) (RecordResult, error) {
	paymentResult, err := s.payments.Create(ctx, payment)
	if err != nil {
		return RecordResult{}, err
	}

	deleteResult, err := s.carts.DeleteManyByIDs(ctx, payment.CartIDs)
	if err != nil {
		logger.WithCtx(ctx).Error("cart purge failed after payment insert",
			"email", payment.Email, "cartIds", len(payment.CartIDs), "error", err)
		return RecordResult{}, fmt.Errorf("payments: cart purge: %w", err)
	}

	return RecordResult{PaymentResult: paymentResult, DeleteResult: deleteResult}, nil
}
