package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/rasoi/app/models"
	"github.com/shashiranjanraj/rasoi/pkg/bind"
	"github.com/shashiranjanraj/rasoi/pkg/response"
)

type cartStore interface {
	Create(ctx context.Context, item models.CartItem) (models.InsertResult, error)
	AllByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	DeleteByID(ctx context.Context, id string) (models.DeleteResult, error)
}

// CartController handles cart CRUD. Routes carry no token gate; scoping is
// by the owner email supplied with each request.
type CartController struct {
	carts cartStore
}

func NewCartController(carts cartStore) *CartController {
	return &CartController{carts: carts}
}

type createCartItemRequest struct {
	Email      string  `json:"email"      validate:"required,email"`
	MenuItemID string  `json:"menuItemId" validate:"required"`
	Name       string  `json:"name"       validate:"required,max=200"`
	Image      string  `json:"image"      validate:"nullable"`
	Price      float64 `json:"price"      validate:"required,gt=0"`
}

// Create handles POST /carts.
func (c *CartController) Create(w http.ResponseWriter, r *http.Request) {
	var body createCartItemRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if errs != nil {
		response.BadRequest(w, bind.FirstError(errs))
		return
	}

	res, err := c.carts.Create(r.Context(), models.CartItem{
		Email:      body.Email,
		MenuItemID: body.MenuItemID,
		Name:       body.Name,
		Image:      body.Image,
		Price:      body.Price,
	})
	if err != nil {
		writeRepoError(w, r, err, "Failed to add cart item")
		return
	}
	response.OK(w, res)
}

// List handles GET /carts?email=. The email query parameter is mandatory;
// without it there is no owner to scope by.
func (c *CartController) List(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		response.BadRequest(w, "Email is required")
		return
	}

	items, err := c.carts.AllByEmail(r.Context(), email)
	if err != nil {
		writeRepoError(w, r, err, "Failed to fetch cart items")
		return
	}
	response.OK(w, items)
}

// Delete handles DELETE /carts/{id}.
func (c *CartController) Delete(w http.ResponseWriter, r *http.Request) {
	res, err := c.carts.DeleteByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, r, err, "Failed to delete cart item")
		return
	}
	response.OK(w, res)
}
