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
	"github.com/shashiranjanraj/rasoi/pkg/auth"
	"github.com/shashiranjanraj/rasoi/pkg/middleware"
)

type fakeUserStore struct {
	users      []models.User
	existing   map[string]bool
	deleteErr  error
	promoteErr error
}

func (f *fakeUserStore) CreateIfAbsent(_ context.Context, u models.User) (interface{}, bool, error) {
	if f.existing[u.Email] {
		return nil, false, nil
	}
	return primitive.NewObjectID(), true, nil
}

func (f *fakeUserStore) All(context.Context) ([]models.User, error) { return f.users, nil }

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repositories.ErrNotFound
}

func (f *fakeUserStore) DeleteByID(_ context.Context, id string) (models.DeleteResult, error) {
	if f.deleteErr != nil {
		return models.DeleteResult{}, f.deleteErr
	}
	return models.DeleteResult{DeletedCount: 1}, nil
}

func (f *fakeUserStore) PromoteToAdmin(_ context.Context, id string) (models.UpdateResult, error) {
	if f.promoteErr != nil {
		return models.UpdateResult{}, f.promoteErr
	}
	return models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func userRouter(store *fakeUserStore) http.Handler {
	c := controllers.NewUserController(store)
	r := chi.NewRouter()
	r.Get("/users", c.List)
	r.Get("/users/admin/{email}", c.AdminFlag)
	r.Post("/users", c.Create)
	r.Delete("/users/{id}", c.Delete)
	r.Patch("/users/admin/{id}", c.Promote)
	return r
}

func asUser(req *http.Request, email string) *http.Request {
	return req.WithContext(middleware.WithClaims(req.Context(), &auth.Claims{Email: email}))
}

func TestCreateUserDuplicateIsNoOpSuccess(t *testing.T) {
	store := &fakeUserStore{existing: map[string]bool{"dup@x.com": true}}
	r := userRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"name":"Dup","email":"dup@x.com"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"insertedId":null`)
	assert.Contains(t, body, "User already exists")
}

func TestCreateUserFreshEmail(t *testing.T) {
	r := userRouter(&fakeUserStore{})

	req := httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"name":"New","email":"new@x.com"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"insertedId":null`)
}

func TestCreateUserRejectsBadEmail(t *testing.T) {
	r := userRouter(&fakeUserStore{})

	req := httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"name":"X","email":"not-an-email"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminFlagSelfScope(t *testing.T) {
	store := &fakeUserStore{users: []models.User{
		{Email: "boss@x.com", Role: models.RoleAdmin},
	}}
	r := userRouter(store)

	req := asUser(httptest.NewRequest(http.MethodGet, "/users/admin/boss@x.com", nil), "boss@x.com")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"admin":true`)
}

func TestAdminFlagMismatchedEmailIsForbidden(t *testing.T) {
	r := userRouter(&fakeUserStore{})

	req := asUser(httptest.NewRequest(http.MethodGet, "/users/admin/other@x.com", nil), "me@x.com")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminFlagUnknownUserIsFalse(t *testing.T) {
	r := userRouter(&fakeUserStore{})

	req := asUser(httptest.NewRequest(http.MethodGet, "/users/admin/ghost@x.com", nil), "ghost@x.com")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"admin":false`)
}

func TestDeleteUserInvalidIDIs400(t *testing.T) {
	r := userRouter(&fakeUserStore{deleteErr: repositories.ErrInvalidID})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/users/bogus", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid ID format")
}

func TestPromoteUserReturnsUpdateCounts(t *testing.T) {
	r := userRouter(&fakeUserStore{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/users/admin/65f1a2b3c4d5e6f7a8b9c0d1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"matchedCount":1`)
	assert.Contains(t, rec.Body.String(), `"modifiedCount":1`)
}
