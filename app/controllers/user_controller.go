package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/rasoi/app/models"
	"github.com/shashiranjanraj/rasoi/app/repositories"
	"github.com/shashiranjanraj/rasoi/pkg/bind"
	"github.com/shashiranjanraj/rasoi/pkg/middleware"
	"github.com/shashiranjanraj/rasoi/pkg/response"
)

// userStore is the slice of UserRepository the controller needs.
type userStore interface {
	CreateIfAbsent(ctx context.Context, user models.User) (interface{}, bool, error)
	All(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	DeleteByID(ctx context.Context, id string) (models.DeleteResult, error)
	PromoteToAdmin(ctx context.Context, id string) (models.UpdateResult, error)
}

// UserController handles user administration and sign-in upserts.
type UserController struct {
	users userStore
}

func NewUserController(users userStore) *UserController {
	return &UserController{users: users}
}

// List handles GET /users (admin).
func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.users.All(r.Context())
	if err != nil {
		writeRepoError(w, r, err, "Failed to fetch users")
		return
	}
	response.OK(w, users)
}

// AdminFlag handles GET /users/admin/{email}. Self-scoped: the path email
// must match the token's email so nobody can probe another user's role.
func (c *UserController) AdminFlag(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	claims := middleware.ClaimsFromCtx(r.Context())
	if claims == nil || claims.Email != email {
		response.Forbidden(w, "Forbidden access")
		return
	}

	user, err := c.users.FindByEmail(r.Context(), email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		writeRepoError(w, r, err, "Failed to fetch user")
		return
	}

	response.OK(w, map[string]bool{"admin": user.IsAdmin()})
}

type createUserRequest struct {
	Name  string `json:"name"  validate:"nullable,max=100"`
	Email string `json:"email" validate:"required,email"`
}

// Create handles POST /users: insert-if-absent by email. A duplicate email
// is a no-op success with insertedId null, so clients can distinguish
// "already exists" from "created".
func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var body createUserRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if errs != nil {
		response.BadRequest(w, bind.FirstError(errs))
		return
	}

	insertedID, created, err := c.users.CreateIfAbsent(r.Context(), models.User{
		Name:  body.Name,
		Email: body.Email,
	})
	if err != nil {
		writeRepoError(w, r, err, "Failed to create user")
		return
	}

	if !created {
		response.OK(w, models.InsertResult{InsertedID: nil, Message: "User already exists"})
		return
	}
	response.OK(w, models.InsertResult{InsertedID: insertedID})
}

// Delete handles DELETE /users/{id} (admin).
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	res, err := c.users.DeleteByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, r, err, "Failed to delete user")
		return
	}
	response.OK(w, res)
}

// Promote handles PATCH /users/admin/{id} (admin): sets role=admin.
func (c *UserController) Promote(w http.ResponseWriter, r *http.Request) {
	res, err := c.users.PromoteToAdmin(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, r, err, "Failed to promote user")
		return
	}
	response.OK(w, res)
}
