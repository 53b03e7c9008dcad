package controllers

import (
	"context"
	"net/http"

	"github.com/shashiranjanraj/rasoi/app/models"
	"github.com/shashiranjanraj/rasoi/pkg/response"
)

type statsProvider interface {
	AdminStats(ctx context.Context) (models.AdminStats, error)
	OrderStats(ctx context.Context) ([]models.CategoryStat, error)
}

// StatsController serves the admin reporting endpoints.
type StatsController struct {
	stats statsProvider
}

func NewStatsController(stats statsProvider) *StatsController {
	return &StatsController{stats: stats}
}

// Admin handles GET /admin-stats.
func (c *StatsController) Admin(w http.ResponseWriter, r *http.Request) {
	stats, err := c.stats.AdminStats(r.Context())
	if err != nil {
		writeRepoError(w, r, err, "Failed to fetch admin stats")
		return
	}
	response.OK(w, stats)
}

// Orders handles GET /order-stats.
func (c *StatsController) Orders(w http.ResponseWriter, r *http.Request) {
	stats, err := c.stats.OrderStats(r.Context())
	if err != nil {
		writeRepoError(w, r, err, "Failed to fetch order stats")
		return
	}
	response.OK(w, stats)
}
