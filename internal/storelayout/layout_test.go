package storelayout

import (
	"context"
	"testing"

	pkgerrors "github.com/smartaisle/smartcart-backend/pkg/errors"
	"github.com/smartaisle/smartcart-backend/pkg/enums"
)

func TestGetStore(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	store, err := svc.GetStore(ctx, 1)
	if err != nil {
		t.Fatalf("GetStore: %v", err)
	}
	if store.Name != "Smart Grocery Store" {
		t.Fatalf("unexpected store name %q", store.Name)
	}

	if _, err := svc.GetStore(ctx, 42); !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestGetLayout(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	layout, err := svc.GetLayout(ctx, 1)
	if err != nil {
		t.Fatalf("GetLayout: %v", err)
	}
	if len(layout.Sections) != len(enums.Sections()) {
		t.Fatalf("expected %d sections, got %d", len(enums.Sections()), len(layout.Sections))
	}
	if len(layout.Zones) != len(layout.Sections) {
		t.Fatalf("expected a zone per section, got %d zones", len(layout.Zones))
	}

	// Every section id and zone anchor must be a known store section.
	for _, section := range layout.Sections {
		if !section.ID.IsValid() {
			t.Fatalf("unknown section id %q", section.ID)
		}
	}
	for _, zone := range layout.Zones {
		if !zone.Section.IsValid() {
			t.Fatalf("zone anchored to unknown section %q", zone.Section)
		}
	}

	if _, err := svc.GetLayout(ctx, 42); !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
