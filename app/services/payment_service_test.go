package services_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/rasoi/app/models"
	"github.com/shashiranjanraj/rasoi/app/services"
	"github.com/shashiranjanraj/rasoi/pkg/httpx"
)

func TestMinorUnitsTruncates(t *testing.T) {
	assert.Equal(t, int64(1050), services.MinorUnits(10.50))
	assert.Equal(t, int64(1999), services.MinorUnits(19.999))
	assert.Equal(t, int64(0), services.MinorUnits(0))
	assert.Equal(t, int64(9), services.MinorUnits(0.099))
}

// roundTripFunc lets a test stand in for the gateway.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func TestCreateIntentSendsFormAndReturnsSecret(t *testing.T) {
	var captured *http.Request
	var form []byte
	httpx.DefaultClient.Transport = roundTripFunc(func(req *http.Request) (*http.Response, error) {
		captured = req
		form, _ = io.ReadAll(req.Body)
		return jsonResponse(http.StatusOK, `{"id":"pi_1","client_secret":"pi_1_secret_x"}`), nil
	})
	defer httpx.ResetTransport()

	svc := services.NewPaymentService(nil, nil)
	secret, err := svc.CreateIntent(context.Background(), 19.999)

	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret_x", secret)

	require.NotNil(t, captured)
	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Contains(t, captured.URL.Path, "/payment_intents")
	assert.Equal(t, "application/x-www-form-urlencoded", captured.Header.Get("Content-Type"))
	assert.Contains(t, string(form), "amount=1999")
	assert.Contains(t, string(form), "currency=usd")
	assert.Contains(t, string(form), "payment_method_types")
}

func TestCreateIntentGatewayRejection(t *testing.T) {
	httpx.DefaultClient.Transport = roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusPaymentRequired, `{"error":{"message":"card declined"}}`), nil
	})
	defer httpx.ResetTransport()

	svc := services.NewPaymentService(nil, nil)
	_, err := svc.CreateIntent(context.Background(), 5)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create intent")
}

type fakePayments struct {
	inserted []models.Payment
	err      error
}

func (f *fakePayments) Create(_ context.Context, p models.Payment) (models.InsertResult, error) {
	if f.err != nil {
		return models.InsertResult{}, f.err
	}
	f.inserted = append(f.inserted, p)
	return models.InsertResult{InsertedID: primitive.NewObjectID()}, nil
}

type fakeCarts struct {
	purged [][]primitive.ObjectID
	err    error
}

func (f *fakeCarts) DeleteManyByIDs(_ context.Context, ids []primitive.ObjectID) (models.DeleteResult, error) {
	if f.err != nil {
		return models.DeleteResult{}, f.err
	}
	f.purged = append(f.purged, ids)
	return models.DeleteResult{DeletedCount: int64(len(ids))}, nil
}

func samplePayment(t *testing.T) models.Payment {
	t.Helper()
	return models.Payment{
		Email:         "diner@example.com",
		Price:         42.5,
		TransactionID: "pi_1",
		CartIDs:       []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()},
		MenuItemIDs:   []primitive.ObjectID{primitive.NewObjectID()},
		Status:        "pending",
		Date:          time.Now().UTC(),
	}
}

func TestRecordPaymentInsertsThenPurges(t *testing.T) {
	payments := &fakePayments{}
	carts := &fakeCarts{}
	svc := services.NewPaymentService(payments, carts)

	payment := samplePayment(t)
	result, err := svc.RecordPayment(context.Background(), payment)

	require.NoError(t, err)
	assert.NotNil(t, result.PaymentResult.InsertedID)
	assert.Equal(t, int64(2), result.DeleteResult.DeletedCount)

	require.Len(t, payments.inserted, 1)
	require.Len(t, carts.purged, 1)
	assert.Equal(t, payment.CartIDs, carts.purged[0])
}

func TestRecordPaymentInsertFailureSkipsPurge(t *testing.T) {
	payments := &fakePayments{err: errors.New("write concern")}
	carts := &fakeCarts{}
	svc := services.NewPaymentService(payments, carts)

	_, err := svc.RecordPayment(context.Background(), samplePayment(t))

	require.Error(t, err)
	assert.Empty(t, carts.purged, "cart purge must not run when the insert fails")
}

func TestRecordPaymentPurgeFailureIsReported(t *testing.T) {
	payments := &fakePayments{}
	carts := &fakeCarts{err: errors.New("connection reset")}
	svc := services.NewPaymentService(payments, carts)

	_, err := svc.RecordPayment(context.Background(), samplePayment(t))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cart purge")
	assert.Len(t, payments.inserted, 1, "the payment stays recorded; there is no compensation")
}
