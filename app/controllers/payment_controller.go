package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/rasoi/app/models"
	"github.com/shashiranjanraj/rasoi/app/repositories"
	"github.com/shashiranjanraj/rasoi/app/services"
	"github.com/shashiranjanraj/rasoi/pkg/bind"
	"github.com/shashiranjanraj/rasoi/pkg/logger"
	"github.com/shashiranjanraj/rasoi/pkg/middleware"
	"github.com/shashiranjanraj/rasoi/pkg/response"
)

type paymentHistory interface {
	AllByEmail(ctx context.Context, email string) ([]models.Payment, error)
}

type checkoutService interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
	RecordPayment(ctx context.Context, payment models.Payment) (services.RecordResult, error)
}

// PaymentController handles payment history, gateway intents, and checkout
// recording.
type PaymentController struct {
	payments paymentHistory
	checkout checkoutService
}

func NewPaymentController(payments paymentHistory, checkout checkoutService) *PaymentController {
	return &PaymentController{payments: payments, checkout: checkout}
}

// History handles GET /payments/{email}. Self-scoped: a token for a
// different email must not read this history.
func (c *PaymentController) History(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	claims := middleware.ClaimsFromCtx(r.Context())
	if claims == nil || claims.Email != email {
		response.Forbidden(w, "Forbidden Access")
		return
	}

	payments, err := c.payments.AllByEmail(r.Context(), email)
	if err != nil {
		writeRepoError(w, r, err, "Failed to fetch payments")
		return
	}
	response.OK(w, payments)
}

type createIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// CreateIntent handles POST /create-payment-intent.
func (c *PaymentController) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var body createIntentRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if errs != nil {
		response.BadRequest(w, bind.FirstError(errs))
		return
	}

	secret, err := c.checkout.CreateIntent(r.Context(), body.Price)
	if err != nil {
		logger.WithCtx(r.Context()).Error("payment intent failed", "error", err)
		response.Internal(w, "Failed to create payment intent")
		return
	}

	response.OK(w, map[string]string{"clientSecret": secret})
}

type recordPaymentRequest struct {
	Email         string   `json:"email"         validate:"required,email"`
	Price         float64  `json:"price"         validate:"required,gt=0"`
	TransactionID string   `json:"transactionId" validate:"required"`
	CartIDs       []string `json:"cartIds"       validate:"required"`
	MenuItemIDs   []string `json:"menuItemIds"   validate:"required"`
	Status        string   `json:"status"        validate:"nullable,max=50"`
}

// Record handles POST /payments: insert the payment record, then purge the
// cart items it paid for.
func (c *PaymentController) Record(w http.ResponseWriter, r *http.Request) {
	var body recordPaymentRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if errs != nil {
		response.BadRequest(w, bind.FirstError(errs))
		return
	}

	cartIDs, err := repositories.ParseIDs(body.CartIDs)
	if err != nil {
		response.BadRequest(w, "Invalid ID format")
		return
	}
	menuItemIDs, err := repositories.ParseIDs(body.MenuItemIDs)
	if err != nil {
		response.BadRequest(w, "Invalid ID format")
		return
	}

	result, err := c.checkout.RecordPayment(r.Context(), models.Payment{
		Email:         body.Email,
		Price:         body.Price,
		TransactionID: body.TransactionID,
		Date:          time.Now().UTC(),
		CartIDs:       cartIDs,
		MenuItemIDs:   menuItemIDs,
		Status:        body.Status,
	})
	if err != nil {
		logger.WithCtx(r.Context()).Error("payment recording failed", "error", err)
		response.Internal(w, "Failed to process payment")
		return
	}

	response.OK(w, result)
}
