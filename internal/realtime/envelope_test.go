package realtime

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDecodeInbound(t *testing.T) {
	msg, err := decodeInbound([]byte(`{"type":"position_report","section":"produce","x":0.5,"y":1}`))
	if err != nil {
		t.Fatalf("decodeInbound: %v", err)
	}
	if msg.Type != EventPositionReport {
		t.Fatalf("unexpected type %q", msg.Type)
	}
	if msg.Section != "produce" || !msg.Y.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("unexpected payload %+v", msg)
	}

	msg, err = decodeInbound([]byte(`{"type":"cart_changed","summary":{"subtotal":"80.00"}}`))
	if err != nil {
		t.Fatalf("decodeInbound: %v", err)
	}
	if msg.Type != EventCartChanged {
		t.Fatalf("unexpected type %q", msg.Type)
	}
}

func TestDecodeInboundRejects(t *testing.T) {
	cases := []struct {
		name  string
		frame string
	}{
		{name: "not json", frame: `{{{`},
		{name: "missing type", frame: `{"section":"produce"}`},
		{name: "unknown type", frame: `{"type":"teleport"}`},
		{name: "outbound type", frame: `{"type":"position_updated"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := decodeInbound([]byte(tc.frame)); err == nil {
				t.Fatalf("expected error for frame %s", tc.frame)
			}
		})
	}
}

func TestEncodeEventShapes(t *testing.T) {
	data, err := encodeEvent(connectedEvent{Type: EventConnected, SessionID: "session-a"})
	if err != nil {
		t.Fatalf("encodeEvent: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["type"] != "connected" || decoded["sessionId"] != "session-a" {
		t.Fatalf("unexpected shape %v", decoded)
	}
}
