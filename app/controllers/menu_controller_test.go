package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/rasoi/app/controllers"
	"github.com/shashiranjanraj/rasoi/app/models"
	"github.com/shashiranjanraj/rasoi/app/repositories"
)

type fakeMenuStore struct {
	items   []models.MenuItem
	created []models.MenuItem
	findErr error
}

func (f *fakeMenuStore) All(context.Context) ([]models.MenuItem, error) { return f.items, nil }

func (f *fakeMenuStore) FindByID(_ context.Context, id string) (models.MenuItem, error) {
	if f.findErr != nil {
		return models.MenuItem{}, f.findErr
	}
	if len(f.items) == 0 {
		return models.MenuItem{}, repositories.ErrNotFound
	}
	return f.items[0], nil
}

func (f *fakeMenuStore) Create(_ context.Context, item models.MenuItem) (models.InsertResult, error) {
	f.created = append(f.created, item)
	return models.InsertResult{InsertedID: primitive.NewObjectID()}, nil
}

func (f *fakeMenuStore) UpdateByID(_ context.Context, id string, item models.MenuItem) (models.UpdateResult, error) {
	return models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeMenuStore) DeleteByID(_ context.Context, id string) (models.DeleteResult, error) {
	return models.DeleteResult{DeletedCount: 1}, nil
}

func menuRouter(store *fakeMenuStore) http.Handler {
	c := controllers.NewMenuController(store)
	r := chi.NewRouter()
	r.Get("/menu", c.List)
	r.Get("/menu/{id}", c.Show)
	r.Post("/menu", c.Create)
	r.Patch("/menu/{id}", c.Update)
	r.Delete("/menu/{id}", c.Delete)
	return r
}

func TestListMenu(t *testing.T) {
	store := &fakeMenuStore{items: []models.MenuItem{
		{Name: "Margherita", Category: "pizza", Price: 11.5},
		{Name: "Tiramisu", Category: "dessert", Price: 6.0},
	}}
	rec := httptest.NewRecorder()
	menuRouter(store).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/menu", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Margherita")
	assert.Contains(t, rec.Body.String(), "Tiramisu")
}

func TestShowMenuItemNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	menuRouter(&fakeMenuStore{}).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/menu/65f1a2b3c4d5e6f7a8b9c0d1", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No document found with the provided ID")
}

func TestShowMenuItemMalformedID(t *testing.T) {
	rec := httptest.NewRecorder()
	menuRouter(&fakeMenuStore{findErr: repositories.ErrInvalidID}).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/menu/not-hex", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateMenuItem(t *testing.T) {
	store := &fakeMenuStore{}
	req := httptest.NewRequest(http.MethodPost, "/menu", strings.NewReader(
		`{"name":"Biryani","category":"rice","price":14.25,"recipe":"slow cooked","image":"biryani.jpg"}`))
	rec := httptest.NewRecorder()
	menuRouter(store).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.created, 1)
	assert.Equal(t, "Biryani", store.created[0].Name)
	assert.Equal(t, 14.25, store.created[0].Price)
	assert.Contains(t, rec.Body.String(), "insertedId")
}

func TestCreateMenuItemValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"category":"pizza","price":10}`},
		{"missing category", `{"name":"X","price":10}`},
		{"zero price", `{"name":"X","category":"pizza","price":0}`},
		{"negative price", `{"name":"X","category":"pizza","price":-2}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeMenuStore{}
			req := httptest.NewRequest(http.MethodPost, "/menu", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			menuRouter(store).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, store.created, "invalid payload must not reach the store")
		})
	}
}

func TestUpdateMenuItemReturnsMatchedCount(t *testing.T) {
	req := httptest.NewRequest(http.MethodPatch, "/menu/65f1a2b3c4d5e6f7a8b9c0d1",
		strings.NewReader(`{"name":"Biryani","category":"rice","price":15.0}`))
	rec := httptest.NewRecorder()
	menuRouter(&fakeMenuStore{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"matchedCount":1`)
}

func TestDeleteMenuItem(t *testing.T) {
	rec := httptest.NewRecorder()
	menuRouter(&fakeMenuStore{}).ServeHTTP(rec,
		httptest.NewRequest(http.MethodDelete, "/menu/65f1a2b3c4d5e6f7a8b9c0d1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"deletedCount":1`)
}
