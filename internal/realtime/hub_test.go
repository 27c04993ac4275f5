package realtime

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/smartaisle/smartcart-backend/internal/cart"
	"github.com/smartaisle/smartcart-backend/internal/position"
	"github.com/smartaisle/smartcart-backend/pkg/config"
	"github.com/smartaisle/smartcart-backend/pkg/logger"
)

func testHub(t *testing.T) *Hub {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	pricing := cart.DefaultPricing()
	carts := cart.NewMemoryStore(pricing, cart.NopNotifier{})
	positions := position.NewMemoryStore(position.NopNotifier{})
	cfg := config.RealtimeConfig{SendBufferSize: 16}
	hub := NewHub(cfg, positions, carts, logg, nil)
	carts.SetNotifier(hub)
	positions.SetNotifier(hub)
	return hub
}

// connect registers a fake client without a real socket; events land
// on its send channel.
func connect(t *testing.T, hub *Hub, sessionID string) *Client {
	t.Helper()
	c := &Client{
		hub:       hub,
		sessionID: sessionID,
		send:      make(chan []byte, 16),
	}
	hub.register(context.Background(), c)
	return c
}

func nextEvent(t *testing.T, c *Client) map[string]json.RawMessage {
	t.Helper()
	select {
	case data := <-c.send:
		var event map[string]json.RawMessage
		if err := json.Unmarshal(data, &event); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		return event
	default:
		t.Fatalf("no event queued for session %s", c.sessionID)
		return nil
	}
}

func eventType(t *testing.T, event map[string]json.RawMessage) string {
	t.Helper()
	var typ string
	if err := json.Unmarshal(event["type"], &typ); err != nil {
		t.Fatalf("unmarshal type: %v", err)
	}
	return typ
}

func noEvent(t *testing.T, c *Client) {
	t.Helper()
	select {
	case data := <-c.send:
		t.Fatalf("unexpected event for session %s: %s", c.sessionID, data)
	default:
	}
}

func TestRegisterReplacesExistingConnection(t *testing.T) {
	hub := testHub(t)
	first := connect(t, hub, "session-a")
	second := connect(t, hub, "session-a")

	if hub.ConnectionCount() != 1 {
		t.Fatalf("expected 1 connection, got %d", hub.ConnectionCount())
	}
	if !first.sendClosed {
		t.Fatalf("replaced connection should have its send channel closed")
	}

	hub.unicast(context.Background(), "session-a", EventCartSync, connectedEvent{Type: EventConnected, SessionID: "session-a"})
	nextEvent(t, second)
}

func TestUnregisterIsScopedToTheClient(t *testing.T) {
	hub := testHub(t)
	first := connect(t, hub, "session-a")
	second := connect(t, hub, "session-a")

	// The stale connection going away must not evict its successor.
	hub.unregister(context.Background(), first)
	if hub.ConnectionCount() != 1 {
		t.Fatalf("expected 1 connection, got %d", hub.ConnectionCount())
	}

	hub.unregister(context.Background(), second)
	if hub.ConnectionCount() != 0 {
		t.Fatalf("expected 0 connections, got %d", hub.ConnectionCount())
	}
}

func TestPositionReportBroadcastsToAllSessions(t *testing.T) {
	hub := testHub(t)
	a := connect(t, hub, "session-a")
	b := connect(t, hub, "session-b")
	c := connect(t, hub, "session-c")

	frame := []byte(`{"type":"position_report","section":"dairy","x":1.5,"y":0.5}`)
	hub.handleInbound(context.Background(), "session-a", frame)

	for _, client := range []*Client{a, b, c} {
		event := nextEvent(t, client)
		if got := eventType(t, event); got != string(EventPositionUpdated) {
			t.Fatalf("session %s got event %q", client.sessionID, got)
		}
		var sessionID string
		if err := json.Unmarshal(event["sessionId"], &sessionID); err != nil {
			t.Fatalf("unmarshal sessionId: %v", err)
		}
		if sessionID != "session-a" {
			t.Fatalf("expected reporter session-a, got %q", sessionID)
		}
		var pos position.Position
		if err := json.Unmarshal(event["position"], &pos); err != nil {
			t.Fatalf("unmarshal position: %v", err)
		}
		if pos.Section != "dairy" || !pos.X.Equal(decimal.RequireFromString("1.5")) {
			t.Fatalf("unexpected position %+v", pos)
		}
	}
}

func TestInvalidPositionReportFansOutNothing(t *testing.T) {
	hub := testHub(t)
	a := connect(t, hub, "session-a")
	b := connect(t, hub, "session-b")

	frame := []byte(`{"type":"position_report","section":"parking-lot","x":1,"y":1}`)
	hub.handleInbound(context.Background(), "session-a", frame)

	noEvent(t, a)
	noEvent(t, b)
}

func TestCartChangedEchoesAuthoritativeSummary(t *testing.T) {
	hub := testHub(t)
	a := connect(t, hub, "session-a")
	b := connect(t, hub, "session-b")

	if _, err := hub.carts.AddLine(context.Background(), cart.AddLineInput{
		SessionID: "session-a",
		ProductID: 7,
		Quantity:  decimal.NewFromInt(2),
		UnitPrice: decimal.RequireFromString("40.00"),
	}); err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	// The store-driven push arrives first; drain it.
	nextEvent(t, a) // item_added
	nextEvent(t, a) // cart_sync

	// The client-supplied summary is ignored entirely.
	frame := []byte(`{"type":"cart_changed","summary":{"subtotal":"999999.00"}}`)
	hub.handleInbound(context.Background(), "session-a", frame)

	event := nextEvent(t, a)
	if got := eventType(t, event); got != string(EventCartSync) {
		t.Fatalf("expected cart_sync, got %q", got)
	}
	var summary cart.Summary
	if err := json.Unmarshal(event["summary"], &summary); err != nil {
		t.Fatalf("unmarshal summary: %v", err)
	}
	if !summary.Subtotal.Equal(decimal.RequireFromString("80.00")) {
		t.Fatalf("expected authoritative subtotal 80.00, got %s", summary.Subtotal)
	}

	noEvent(t, b)
}

func TestStoreMutationsPushToOwningSessionOnly(t *testing.T) {
	hub := testHub(t)
	a := connect(t, hub, "session-a")
	b := connect(t, hub, "session-b")

	line, err := hub.carts.AddLine(context.Background(), cart.AddLineInput{
		SessionID: "session-a",
		ProductID: 9,
		Quantity:  decimal.NewFromInt(1),
		UnitPrice: decimal.RequireFromString("450.00"),
	})
	if err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	added := nextEvent(t, a)
	if got := eventType(t, added); got != string(EventItemAdded) {
		t.Fatalf("expected item_added first, got %q", got)
	}
	var pushed cart.Line
	if err := json.Unmarshal(added["cartLine"], &pushed); err != nil {
		t.Fatalf("unmarshal cartLine: %v", err)
	}
	if pushed.ID != line.ID {
		t.Fatalf("expected line %s, got %s", line.ID, pushed.ID)
	}

	synced := nextEvent(t, a)
	if got := eventType(t, synced); got != string(EventCartSync) {
		t.Fatalf("expected cart_sync second, got %q", got)
	}

	noEvent(t, b)
}

func TestMalformedFramesAreDropped(t *testing.T) {
	hub := testHub(t)
	a := connect(t, hub, "session-a")

	hub.handleInbound(context.Background(), "session-a", []byte(`not json`))
	hub.handleInbound(context.Background(), "session-a", []byte(`{"type":"shoplifting_alert"}`))
	hub.handleInbound(context.Background(), "session-a", []byte(`{}`))

	noEvent(t, a)
	if hub.ConnectionCount() != 1 {
		t.Fatalf("connection should survive malformed frames")
	}
}

func TestFullSendQueueSkipsDelivery(t *testing.T) {
	hub := testHub(t)
	c := &Client{hub: hub, sessionID: "session-a", send: make(chan []byte, 1)}
	hub.register(context.Background(), c)

	ctx := context.Background()
	event := connectedEvent{Type: EventConnected, SessionID: "session-a"}
	hub.unicast(ctx, "session-a", EventConnected, event)
	hub.unicast(ctx, "session-a", EventConnected, event)

	if got := len(c.send); got != 1 {
		t.Fatalf("expected 1 queued event, got %d", got)
	}
}

func TestUnicastToUnknownSessionIsANoop(t *testing.T) {
	hub := testHub(t)
	hub.unicast(context.Background(), "nobody-home", EventCartSync, connectedEvent{Type: EventConnected})
}
