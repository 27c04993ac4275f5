package realtime

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/smartaisle/smartcart-backend/internal/cart"
	"github.com/smartaisle/smartcart-backend/internal/position"
)

// EventType tags every socket message.
type EventType string

const (
	// Inbound, client to server.
	EventPositionReport EventType = "position_report"
	EventCartChanged    EventType = "cart_changed"

	// Outbound, server to client.
	EventConnected       EventType = "connected"
	EventPositionUpdated EventType = "position_updated"
	EventCartSync        EventType = "cart_sync"
	EventItemAdded       EventType = "item_added"
)

// inboundMessage is the decoded superset of all client payloads.
// Which fields matter depends on Type.
type inboundMessage struct {
	Type    EventType       `json:"type"`
	Section string          `json:"section"`
	X       decimal.Decimal `json:"x"`
	Y       decimal.Decimal `json:"y"`
	// Summary is accepted for wire compatibility with older clients
	// but never trusted; the store recomputes the authoritative one.
	Summary json.RawMessage `json:"summary"`
}

// decodeInbound parses a client frame and rejects unknown tags. The
// caller logs and drops rejected frames without closing the socket.
func decodeInbound(data []byte) (inboundMessage, error) {
	var msg inboundMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return inboundMessage{}, fmt.Errorf("decoding socket frame: %w", err)
	}
	switch msg.Type {
	case EventPositionReport, EventCartChanged:
		return msg, nil
	default:
		return inboundMessage{}, fmt.Errorf("unknown socket event %q", msg.Type)
	}
}

type connectedEvent struct {
	Type      EventType `json:"type"`
	SessionID string    `json:"sessionId"`
}

type positionUpdatedEvent struct {
	Type      EventType         `json:"type"`
	SessionID string            `json:"sessionId"`
	Position  position.Position `json:"position"`
}

type cartSyncEvent struct {
	Type      EventType    `json:"type"`
	SessionID string       `json:"sessionId"`
	Summary   cart.Summary `json:"summary"`
}

type itemAddedEvent struct {
	Type     EventType `json:"type"`
	CartLine cart.Line `json:"cartLine"`
}

func encodeEvent(event any) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("encoding socket event: %w", err)
	}
	return data, nil
}
