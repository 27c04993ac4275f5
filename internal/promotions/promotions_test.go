package promotions

import (
	"context"
	"testing"
	"time"
)

func TestActiveFiltersByWindow(t *testing.T) {
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	svc := newService(seedPromotions(base), func() time.Time { return base.Add(time.Hour) })

	active := svc.Active(context.Background())
	if len(active) != 2 {
		t.Fatalf("expected 2 active promotions, got %d", len(active))
	}

	// Past the 3-day produce offer but inside the 7-day oils offer.
	svc.now = func() time.Time { return base.Add(4 * 24 * time.Hour) }
	active = svc.Active(context.Background())
	if len(active) != 1 {
		t.Fatalf("expected 1 active promotion, got %d", len(active))
	}
	if active[0].Title != "Buy 2 Get 1 Free" {
		t.Fatalf("unexpected promotion %q", active[0].Title)
	}

	// Past both windows.
	svc.now = func() time.Time { return base.Add(8 * 24 * time.Hour) }
	if active := svc.Active(context.Background()); len(active) != 0 {
		t.Fatalf("expected no active promotions, got %d", len(active))
	}
}

func TestActiveSkipsDisabled(t *testing.T) {
	base := time.Now()
	promos := seedPromotions(base)
	promos[0].IsActive = false
	svc := newService(promos, func() time.Time { return base })

	active := svc.Active(context.Background())
	if len(active) != 1 {
		t.Fatalf("expected 1 active promotion, got %d", len(active))
	}
	if active[0].ID != 2 {
		t.Fatalf("unexpected promotion id %d", active[0].ID)
	}
}

func TestApplicable(t *testing.T) {
	base := time.Now()
	svc := newService(seedPromotions(base), func() time.Time { return base })
	ctx := context.Background()

	if promos := svc.Applicable(ctx, []string{"oils"}, nil); len(promos) != 1 || promos[0].ID != 1 {
		t.Fatalf("expected the oils promotion, got %+v", promos)
	}
	if promos := svc.Applicable(ctx, []string{"vegetables", "snacks"}, nil); len(promos) != 1 || promos[0].ID != 2 {
		t.Fatalf("expected the produce promotion, got %+v", promos)
	}
	if promos := svc.Applicable(ctx, []string{"snacks"}, nil); len(promos) != 0 {
		t.Fatalf("expected no promotions for snacks, got %d", len(promos))
	}
	if promos := svc.Applicable(ctx, nil, nil); len(promos) != 0 {
		t.Fatalf("expected no promotions for empty scope, got %d", len(promos))
	}
}

func TestApplicableByProductID(t *testing.T) {
	base := time.Now()
	promos := seedPromotions(base)
	promos = append(promos, Promotion{
		ID:                 3,
		Title:              "Rice Week",
		DiscountType:       promos[1].DiscountType,
		DiscountValue:      promos[1].DiscountValue,
		ApplicableProducts: []int64{1},
		IsActive:           true,
		ValidFrom:          base,
		ValidUntil:         base.Add(24 * time.Hour),
	})
	svc := newService(promos, func() time.Time { return base })

	matched := svc.Applicable(context.Background(), nil, []int64{1})
	if len(matched) != 1 || matched[0].ID != 3 {
		t.Fatalf("expected the product-scoped promotion, got %+v", matched)
	}
}
