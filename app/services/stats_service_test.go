package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/rasoi/app/models"
	"github.com/shashiranjanraj/rasoi/app/services"
)

type fakeCounter struct {
	n   int64
	err error
}

func (f fakeCounter) Count(context.Context) (int64, error) { return f.n, f.err }

type fakeRevenue struct {
	fakeCounter
	revenue float64
	stats   []models.CategoryStat
}

func (f fakeRevenue) TotalRevenue(context.Context) (float64, error) { return f.revenue, nil }

func (f fakeRevenue) CategoryStats(context.Context) ([]models.CategoryStat, error) {
	return f.stats, nil
}

func TestAdminStatsAggregates(t *testing.T) {
	svc := services.NewStatsService(
		fakeCounter{n: 12},
		fakeCounter{n: 40},
		fakeRevenue{fakeCounter: fakeCounter{n: 7}, revenue: 512.75},
	)

	stats, err := svc.AdminStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.AdminStats{Users: 12, MenuItems: 40, Orders: 7, Revenue: 512.75}, stats)
}

func TestAdminStatsZeroPayments(t *testing.T) {
	svc := services.NewStatsService(fakeCounter{n: 1}, fakeCounter{n: 1}, fakeRevenue{})

	stats, err := svc.AdminStats(context.Background())

	require.NoError(t, err)
	assert.Zero(t, stats.Orders)
	assert.Zero(t, stats.Revenue)
}

func TestAdminStatsPropagatesCountError(t *testing.T) {
	svc := services.NewStatsService(
		fakeCounter{err: errors.New("server selection timeout")},
		fakeCounter{n: 1},
		fakeRevenue{},
	)

	_, err := svc.AdminStats(context.Background())
	require.Error(t, err)
}

func TestOrderStatsPassesThrough(t *testing.T) {
	want := []models.CategoryStat{
		{Category: "dessert", Quantity: 3, Revenue: 24.5},
		{Category: "pizza", Quantity: 2, Revenue: 31.0},
	}
	svc := services.NewStatsService(fakeCounter{}, fakeCounter{}, fakeRevenue{stats: want})

	got, err := svc.OrderStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
