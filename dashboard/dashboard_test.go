package dashboard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/casacare/casacare-admin-api/models"
)

func day(d int) time.Time {
	return time.Date(2025, 6, d, 12, 0, 0, 0, time.UTC)
}

func TestBuildEmpty(t *testing.T) {
	overview := Build(nil)

	assert.Equal(t, 0, overview.TotalOrders)
	assert.Empty(t, overview.StatusCounts)
	assert.True(t, overview.TotalRevenue.IsZero())
	assert.True(t, overview.CompletedRevenue.IsZero())
	assert.Empty(t, overview.Daily)
}

func TestBuild(t *testing.T) {
	orders := []models.Order{
		{Status: models.OrderStatusCompleted, Total: decimal.NewFromInt(1000), CreatedAt: day(2)},
		{Status: models.OrderStatusPending, Total: decimal.NewFromInt(500), CreatedAt: day(1)},
		{Status: models.OrderStatusCancelled, Total: decimal.NewFromInt(700), CreatedAt: day(1)},
		{Status: models.OrderStatusCompleted, Total: decimal.NewFromInt(300), CreatedAt: day(2)},
	}

	overview := Build(orders)

	assert.Equal(t, 4, overview.TotalOrders)
	assert.Equal(t, 2, overview.StatusCounts[models.OrderStatusCompleted])
	assert.Equal(t, 1, overview.StatusCounts[models.OrderStatusPending])
	assert.Equal(t, 1, overview.StatusCounts[models.OrderStatusCancelled])

	// Cancelled orders never count toward revenue
	assert.True(t, overview.TotalRevenue.Equal(decimal.NewFromInt(1800)),
		"total revenue = %s", overview.TotalRevenue)
	assert.True(t, overview.CompletedRevenue.Equal(decimal.NewFromInt(1300)),
		"completed revenue = %s", overview.CompletedRevenue)

	// Daily series is ascending by date; cancelled orders count toward the
	// day's order count but not its revenue
	if assert.Len(t, overview.Daily, 2) {
		assert.Equal(t, "2025-06-01", overview.Daily[0].Date)
		assert.Equal(t, 2, overview.Daily[0].Orders)
		assert.True(t, overview.Daily[0].Revenue.Equal(decimal.NewFromInt(500)),
			"day 1 revenue = %s", overview.Daily[0].Revenue)

		assert.Equal(t, "2025-06-02", overview.Daily[1].Date)
		assert.Equal(t, 2, overview.Daily[1].Orders)
		assert.True(t, overview.Daily[1].Revenue.Equal(decimal.NewFromInt(1300)),
			"day 2 revenue = %s", overview.Daily[1].Revenue)
	}
}
