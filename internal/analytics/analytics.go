package analytics

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/smartaisle/smartcart-backend/internal/cart"
	"github.com/smartaisle/smartcart-backend/internal/catalog"
)

// CartInventory enumerates live carts. Both store backends satisfy it.
type CartInventory interface {
	SessionSummaries(ctx context.Context) ([]cart.Summary, error)
}

// ConnectionCounter reports how many sessions hold an open socket.
type ConnectionCounter interface {
	ConnectionCount() int
}

// CategoryCount is one entry of the popularity ranking.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// CartUsageReport is a point-in-time rollup over live carts. Nothing
// is persisted; every request recomputes from current state.
type CartUsageReport struct {
	TotalCarts        int             `json:"totalCarts"`
	ActiveNow         int             `json:"activeNow"`
	AverageItems      decimal.Decimal `json:"averageItems"`
	PopularCategories []CategoryCount `json:"popularCategories"`
}

// Service computes usage reports.
type Service interface {
	CartUsage(ctx context.Context) (CartUsageReport, error)
}

type service struct {
	carts       CartInventory
	connections ConnectionCounter
	catalog     catalog.Service
}

// NewService wires the rollup against the live stores.
func NewService(carts CartInventory, connections ConnectionCounter, cat catalog.Service) Service {
	return &service{carts: carts, connections: connections, catalog: cat}
}

func (s *service) CartUsage(ctx context.Context) (CartUsageReport, error) {
	summaries, err := s.carts.SessionSummaries(ctx)
	if err != nil {
		return CartUsageReport{}, err
	}

	report := CartUsageReport{
		TotalCarts:        len(summaries),
		ActiveNow:         s.connections.ConnectionCount(),
		AverageItems:      decimal.Zero,
		PopularCategories: []CategoryCount{},
	}

	categoryCounts := make(map[string]int64)
	var totalItems int64
	for _, summary := range summaries {
		totalItems += summary.ItemCount
		for _, line := range summary.Items {
			product, err := s.catalog.GetByID(ctx, line.ProductID)
			if err != nil {
				// Lines can reference products outside the seeded
				// catalog; they still count toward item totals.
				continue
			}
			categoryCounts[product.Category] += line.EffectiveQuantity().Round(0).IntPart()
		}
	}

	if len(summaries) > 0 {
		report.AverageItems = decimal.NewFromInt(totalItems).
			Div(decimal.NewFromInt(int64(len(summaries)))).
			Round(1)
	}

	for category, count := range categoryCounts {
		report.PopularCategories = append(report.PopularCategories, CategoryCount{
			Category: category,
			Count:    count,
		})
	}
	sort.Slice(report.PopularCategories, func(i, j int) bool {
		a, b := report.PopularCategories[i], report.PopularCategories[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Category < b.Category
	})

	return report, nil
}
