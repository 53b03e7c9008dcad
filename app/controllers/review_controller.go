package controllers

import (
	"context"
	"net/http"

	"github.com/shashiranjanraj/rasoi/app/models"
	"github.com/shashiranjanraj/rasoi/pkg/response"
)

type reviewStore interface {
	All(ctx context.Context) ([]models.Review, error)
}

// ReviewController exposes reviews read-only.
type ReviewController struct {
	reviews reviewStore
}

func NewReviewController(reviews reviewStore) *ReviewController {
	return &ReviewController{reviews: reviews}
}

// List handles GET /reviews.
func (c *ReviewController) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := c.reviews.All(r.Context())
	if err != nil {
		writeRepoError(w, r, err, "Failed to fetch reviews")
		return
	}
	response.OK(w, reviews)
}
