package services

import (
	"context"

	"github.com/shashiranjanraj/rasoi/app/models"
)

type counter interface {
	Count(ctx context.Context) (int64, error)
}

type revenueStore interface {
	counter
	TotalRevenue(ctx context.Context) (float64, error)
	CategoryStats(ctx context.Context) ([]models.CategoryStat, error)
}

// StatsService assembles the admin reporting aggregates.
type StatsService struct {
	users    counter
	menu     counter
	payments revenueStore
}

func NewStatsService(users, menu counter, payments revenueStore) *StatsService {
	return &StatsService{users: users, menu: menu, payments: payments}
}

// AdminStats returns collection counts plus total revenue (0 with no
// payments).
func (s *StatsService) AdminStats(ctx context.Context) (models.AdminStats, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return models.AdminStats{}, err
	}
	menuItems, err := s.menu.Count(ctx)
	if err != nil {
		return models.AdminStats{}, err
	}
	orders, err := s.payments.Count(ctx)
	if err != nil {
		return models.AdminStats{}, err
	}
	revenue, err := s.payments.TotalRevenue(ctx)
	if err != nil {
		return models.AdminStats{}, err
	}

	return models.AdminStats{
		Users:     users,
		MenuItems: menuItems,
		Orders:    orders,
		Revenue:   revenue,
	}, nil
}

// OrderStats returns per-category quantity and revenue across all payments.
func (s *StatsService) OrderStats(ctx context.Context) ([]models.CategoryStat, error) {
	return s.payments.CategoryStats(ctx)
}
