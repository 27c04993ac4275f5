package position

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartaisle/smartcart-backend/pkg/enums"
	pkgerrors "github.com/smartaisle/smartcart-backend/pkg/errors"
)

type recordingNotifier struct {
	mu      sync.Mutex
	updates []Position
}

func (n *recordingNotifier) PositionUpdated(_ context.Context, pos Position) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.updates = append(n.updates, pos)
}

func report(t *testing.T, store Store, sessionID, section string, x, y string) Position {
	t.Helper()
	pos, err := store.Report(context.Background(), ReportInput{
		SessionID: sessionID,
		Section:   section,
		X:         decimal.RequireFromString(x),
		Y:         decimal.RequireFromString(y),
	})
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	return pos
}

func TestReportValidatesSection(t *testing.T) {
	store := NewMemoryStore(nil)

	_, err := store.Report(context.Background(), ReportInput{
		SessionID: "s",
		Section:   "freezer",
		X:         decimal.New(1, 0),
		Y:         decimal.New(1, 0),
	})
	if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error for unknown section, got %v", err)
	}

	if _, ok, _ := store.Get(context.Background(), "s"); ok {
		t.Fatal("failed report must not store a position")
	}
}

func TestReportRequiresSession(t *testing.T) {
	store := NewMemoryStore(nil)
	_, err := store.Report(context.Background(), ReportInput{Section: "dairy"})
	if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error for empty session, got %v", err)
	}
}

func TestReportOverwritesLastWriteWins(t *testing.T) {
	store := NewMemoryStore(nil)
	fixed := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	report(t, store, "s", "produce", "0.5", "1.0")
	second := report(t, store, "s", "dairy", "1.5", "0.5")

	pos, ok, err := store.Get(context.Background(), "s")
	if err != nil || !ok {
		t.Fatalf("Get returned ok=%v err=%v", ok, err)
	}
	if pos.Section != enums.SectionDairy {
		t.Fatalf("expected second report to win, got section %s", pos.Section)
	}
	if !pos.X.Equal(second.X) || !pos.Y.Equal(second.Y) {
		t.Fatalf("expected coordinates from second report, got %+v", pos)
	}
	if !pos.Timestamp.Equal(fixed) {
		t.Fatalf("expected injected timestamp, got %v", pos.Timestamp)
	}
}

func TestGetMissingSession(t *testing.T) {
	store := NewMemoryStore(nil)
	if _, ok, err := store.Get(context.Background(), "ghost"); ok || err != nil {
		t.Fatalf("expected absent position, got ok=%v err=%v", ok, err)
	}
}

func TestReportNotifies(t *testing.T) {
	notifier := &recordingNotifier{}
	store := NewMemoryStore(notifier)

	report(t, store, "a", "spices", "2.5", "0.5")
	report(t, store, "b", "produce", "0.5", "1.0")

	if len(notifier.updates) != 2 {
		t.Fatalf("expected 2 position_updated notifications, got %d", len(notifier.updates))
	}
	if notifier.updates[0].SessionID != "a" || notifier.updates[1].SessionID != "b" {
		t.Fatalf("unexpected notification order: %+v", notifier.updates)
	}
}

func TestConcurrentReportsLeaveOneRecord(t *testing.T) {
	store := NewMemoryStore(nil)
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Report(context.Background(), ReportInput{
				SessionID: "s",
				Section:   "checkout",
				X:         decimal.RequireFromString("2.5"),
				Y:         decimal.RequireFromString("1.5"),
			}); err != nil {
				t.Errorf("Report returned error: %v", err)
			}
		}()
	}
	wg.Wait()

	pos, ok, _ := store.Get(context.Background(), "s")
	if !ok || pos.Section != enums.SectionCheckout {
		t.Fatalf("expected exactly one surviving record, got ok=%v pos=%+v", ok, pos)
	}
}
