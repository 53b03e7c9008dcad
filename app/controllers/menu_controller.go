package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/rasoi/app/models"
	"github.com/shashiranjanraj/rasoi/pkg/bind"
	"github.com/shashiranjanraj/rasoi/pkg/response"
)

type menuStore interface {
	All(ctx context.Context) ([]models.MenuItem, error)
	FindByID(ctx context.Context, id string) (models.MenuItem, error)
	Create(ctx context.Context, item models.MenuItem) (models.InsertResult, error)
	UpdateByID(ctx context.Context, id string, item models.MenuItem) (models.UpdateResult, error)
	DeleteByID(ctx context.Context, id string) (models.DeleteResult, error)
}

// MenuController handles menu CRUD. Reads are public, writes admin-gated at
// the route level.
type MenuController struct {
	menu menuStore
}

func NewMenuController(menu menuStore) *MenuController {
	return &MenuController{menu: menu}
}

// List handles GET /menu.
func (c *MenuController) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.menu.All(r.Context())
	if err != nil {
		writeRepoError(w, r, err, "Failed to fetch menu")
		return
	}
	response.OK(w, items)
}

// Show handles GET /menu/{id}.
func (c *MenuController) Show(w http.ResponseWriter, r *http.Request) {
	item, err := c.menu.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, r, err, "Failed to fetch menu item")
		return
	}
	response.OK(w, item)
}

type menuItemRequest struct {
	Name     string  `json:"name"     validate:"required,max=200"`
	Category string  `json:"category" validate:"required,max=100"`
	Price    float64 `json:"price"    validate:"required,gt=0"`
	Recipe   string  `json:"recipe"   validate:"nullable"`
	Image    string  `json:"image"    validate:"nullable"`
}

func (b menuItemRequest) toModel() models.MenuItem {
	return models.MenuItem{
		Name:     b.Name,
		Category: b.Category,
		Price:    b.Price,
		Recipe:   b.Recipe,
		Image:    b.Image,
	}
}

// Create handles POST /menu (admin).
func (c *MenuController) Create(w http.ResponseWriter, r *http.Request) {
	var body menuItemRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if errs != nil {
		response.BadRequest(w, bind.FirstError(errs))
		return
	}

	res, err := c.menu.Create(r.Context(), body.toModel())
	if err != nil {
		writeRepoError(w, r, err, "Failed to create menu item")
		return
	}
	response.OK(w, res)
}

// Update handles PATCH /menu/{id} (admin).
func (c *MenuController) Update(w http.ResponseWriter, r *http.Request) {
	var body menuItemRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if errs != nil {
		response.BadRequest(w, bind.FirstError(errs))
		return
	}

	res, err := c.menu.UpdateByID(r.Context(), chi.URLParam(r, "id"), body.toModel())
	if err != nil {
		writeRepoError(w, r, err, "Failed to update menu item")
		return
	}
	response.OK(w, res)
}

// Delete handles DELETE /menu/{id} (admin).
func (c *MenuController) Delete(w http.ResponseWriter, r *http.Request) {
	res, err := c.menu.DeleteByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, r, err, "Failed to delete menu item")
		return
	}
	response.OK(w, res)
}
