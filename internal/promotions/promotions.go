package promotions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartaisle/smartcart-backend/pkg/enums"
)

// Promotion is a time-boxed discount offer. Either the category list
// or the product list scopes what it applies to; both empty means the
// offer is store-wide.
type Promotion struct {
	ID                   int64              `json:"id"`
	Title                string             `json:"title"`
	Description          string             `json:"description"`
	DiscountType         enums.DiscountType `json:"discountType"`
	DiscountValue        decimal.Decimal    `json:"discountValue"`
	MinPurchase          *decimal.Decimal   `json:"minPurchase,omitempty"`
	ApplicableCategories []string           `json:"applicableCategories,omitempty"`
	ApplicableProducts   []int64            `json:"applicableProducts,omitempty"`
	IsActive             bool               `json:"isActive"`
	ValidFrom            time.Time          `json:"validFrom"`
	ValidUntil           time.Time          `json:"validUntil"`
}

// Service lists the offers currently running in the store.
type Service interface {
	Active(ctx context.Context) []Promotion
	Applicable(ctx context.Context, categories []string, productIDs []int64) []Promotion
}

type service struct {
	promotions []Promotion
	now        func() time.Time
}

// NewService seeds the demo offers relative to the current time.
func NewService() Service {
	return newService(seedPromotions(time.Now()), time.Now)
}

func newService(promotions []Promotion, now func() time.Time) *service {
	return &service{promotions: promotions, now: now}
}

func seedPromotions(now time.Time) []Promotion {
	minPurchase := decimal.NewFromInt(500)
	return []Promotion{
		{
			ID:                   1,
			Title:                "Buy 2 Get 1 Free",
			Description:          "On all cooking oils",
			DiscountType:         enums.DiscountBOGO,
			DiscountValue:        decimal.RequireFromString("33.33"),
			ApplicableCategories: []string{"oils"},
			IsActive:             true,
			ValidFrom:            now,
			ValidUntil:           now.Add(7 * 24 * time.Hour),
		},
		{
			ID:                   2,
			Title:                "15% Off Fresh Produce",
			Description:          "Minimum purchase ₹500",
			DiscountType:         enums.DiscountPercentage,
			DiscountValue:        decimal.RequireFromString("15.00"),
			MinPurchase:          &minPurchase,
			ApplicableCategories: []string{"vegetables", "fruits"},
			IsActive:             true,
			ValidFrom:            now,
			ValidUntil:           now.Add(3 * 24 * time.Hour),
		},
	}
}

func (s *service) Active(ctx context.Context) []Promotion {
	now := s.now()
	var out []Promotion
	for _, promo := range s.promotions {
		if promo.IsActive && !promo.ValidFrom.After(now) && !promo.ValidUntil.Before(now) {
			out = append(out, promo)
		}
	}
	return out
}

func (s *service) Applicable(ctx context.Context, categories []string, productIDs []int64) []Promotion {
	categorySet := make(map[string]bool, len(categories))
	for _, category := range categories {
		categorySet[category] = true
	}
	productSet := make(map[int64]bool, len(productIDs))
	for _, id := range productIDs {
		productSet[id] = true
	}

	var out []Promotion
	for _, promo := range s.Active(ctx) {
		if matchesAny(promo.ApplicableCategories, categorySet) || matchesAnyID(promo.ApplicableProducts, productSet) {
			out = append(out, promo)
		}
	}
	return out
}

func matchesAny(values []string, set map[string]bool) bool {
	for _, value := range values {
		if set[value] {
			return true
		}
	}
	return false
}

func matchesAnyID(values []int64, set map[int64]bool) bool {
	for _, value := range values {
		if set[value] {
			return true
		}
	}
	return false
}
