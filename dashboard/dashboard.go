// Package dashboard aggregates fetched orders into the counts and time
// series shown on the overview screen. It is pure computation over rows
// the client already holds; nothing here talks to the backend.
package dashboard

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/casacare/casacare-admin-api/models"
)

// DayPoint is one day of the order time series
type DayPoint struct {
	Date    string // YYYY-MM-DD
	Orders  int
	Revenue decimal.Decimal
}

// Overview is the aggregated dashboard state
type Overview struct {
	TotalOrders      int
	StatusCounts     map[string]int
	TotalRevenue     decimal.Decimal // all orders except cancelled
	CompletedRevenue decimal.Decimal
	Daily            []DayPoint // ascending by date
}

// Build aggregates orders into an Overview
func Build(orders []models.Order) Overview {
	overview := Overview{
		TotalOrders:      len(orders),
		StatusCounts:     make(map[string]int),
		TotalRevenue:     decimal.Zero,
		CompletedRevenue: decimal.Zero,
	}

	byDay := make(map[string]*DayPoint)
	for i := range orders {
		order := &orders[i]
		overview.StatusCounts[order.Status]++

		if order.Status != models.OrderStatusCancelled {
			overview.TotalRevenue = overview.TotalRevenue.Add(order.Total)
		}
		if order.Status == models.OrderStatusCompleted {
			overview.CompletedRevenue = overview.CompletedRevenue.Add(order.Total)
		}

		day := order.CreatedAt.Format("2006-01-02")
		point, ok := byDay[day]
		if !ok {
			point = &DayPoint{Date: day, Revenue: decimal.Zero}
			byDay[day] = point
		}
		point.Orders++
		if order.Status != models.OrderStatusCancelled {
			point.Revenue = point.Revenue.Add(order.Total)
		}
	}

	overview.Daily = make([]DayPoint, 0, len(byDay))
	for _, point := range byDay {
		overview.Daily = append(overview.Daily, *point)
	}
	sort.Slice(overview.Daily, func(i, j int) bool {
		return overview.Daily[i].Date < overview.Daily[j].Date
	})
	return overview
}
