package realtime

import (
	"context"
	"sync"

	"github.com/smartaisle/smartcart-backend/internal/cart"
	"github.com/smartaisle/smartcart-backend/internal/position"
	"github.com/smartaisle/smartcart-backend/pkg/config"
	"github.com/smartaisle/smartcart-backend/pkg/logger"
	"github.com/smartaisle/smartcart-backend/pkg/metrics"
)

// Hub maps each session id to exactly one live connection and routes
// events between the stores and the sockets. It owns only routing
// state; cart and position data stay with their stores.
type Hub struct {
	mu      sync.Mutex
	clients map[string]*Client

	cfg       config.RealtimeConfig
	positions position.Store
	carts     cart.Store
	logg      *logger.Logger
	metrics   *metrics.RealtimeMetrics
}

// NewHub wires the hub against the stores it notifies for.
func NewHub(cfg config.RealtimeConfig, positions position.Store, carts cart.Store, logg *logger.Logger, m *metrics.RealtimeMetrics) *Hub {
	return &Hub{
		clients:   make(map[string]*Client),
		cfg:       cfg,
		positions: positions,
		carts:     carts,
		logg:      logg,
		metrics:   m,
	}
}

// register installs the client as the session's single connection.
// A session reconnecting before its old socket was cleaned up simply
// replaces the stale entry; last registered wins.
func (h *Hub) register(ctx context.Context, c *Client) {
	h.mu.Lock()
	if prev, ok := h.clients[c.sessionID]; ok && prev != c {
		prev.closeSend()
	}
	h.clients[c.sessionID] = c
	h.metrics.SetConnections(len(h.clients))
	h.mu.Unlock()
}

// unregister removes the mapping only if it still points at this
// client, so a replaced connection cannot evict its successor.
func (h *Hub) unregister(ctx context.Context, c *Client) {
	h.mu.Lock()
	if current, ok := h.clients[c.sessionID]; ok && current == c {
		delete(h.clients, c.sessionID)
		h.metrics.SetConnections(len(h.clients))
	}
	c.closeSend()
	h.mu.Unlock()
}

// ConnectionCount reports the number of registered sessions.
func (h *Hub) ConnectionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// unicast queues an event for one session. A missing or saturated
// connection skips the send; events are never buffered or replayed.
func (h *Hub) unicast(ctx context.Context, sessionID string, eventType EventType, event any) {
	data, err := encodeEvent(event)
	if err != nil {
		h.logg.Error(ctx, "encoding realtime event", err)
		return
	}
	h.mu.Lock()
	c, ok := h.clients[sessionID]
	if ok {
		h.enqueueLocked(c, eventType, data)
	}
	h.mu.Unlock()
}

// broadcast queues an event for every registered session.
func (h *Hub) broadcast(ctx context.Context, eventType EventType, event any) {
	data, err := encodeEvent(event)
	if err != nil {
		h.logg.Error(ctx, "encoding realtime event", err)
		return
	}
	h.mu.Lock()
	for _, c := range h.clients {
		h.enqueueLocked(c, eventType, data)
	}
	h.mu.Unlock()
}

func (h *Hub) enqueueLocked(c *Client, eventType EventType, data []byte) {
	if c.sendClosed {
		h.metrics.IncDropped(string(eventType))
		return
	}
	select {
	case c.send <- data:
		h.metrics.IncDelivered(string(eventType))
	default:
		h.metrics.IncDropped(string(eventType))
	}
}

// handleInbound routes one client frame. Malformed or unknown frames
// are logged and dropped without touching the connection.
func (h *Hub) handleInbound(ctx context.Context, sessionID string, data []byte) {
	msg, err := decodeInbound(data)
	if err != nil {
		h.metrics.IncInbound("invalid")
		h.logg.Warn(h.logg.WithField(ctx, "error", err.Error()), "dropping malformed socket frame")
		return
	}
	h.metrics.IncInbound(string(msg.Type))

	switch msg.Type {
	case EventPositionReport:
		// The store's notifier callback performs the broadcast, so a
		// rejected report fans out nothing.
		_, err := h.positions.Report(ctx, position.ReportInput{
			SessionID: sessionID,
			Section:   msg.Section,
			X:         msg.X,
			Y:         msg.Y,
		})
		if err != nil {
			h.logg.Warn(h.logg.WithField(ctx, "error", err.Error()), "rejecting position report")
		}
	case EventCartChanged:
		// Legacy path: the client-supplied summary is ignored and the
		// store's current view is echoed back instead.
		summary, err := h.carts.GetSummary(ctx, sessionID)
		if err != nil {
			h.logg.Error(ctx, "loading summary for cart sync", err)
			return
		}
		h.unicast(ctx, sessionID, EventCartSync, cartSyncEvent{
			Type:      EventCartSync,
			SessionID: sessionID,
			Summary:   summary,
		})
	}
}

// ItemAdded implements cart.Notifier: the new line goes back to the
// originating session only.
func (h *Hub) ItemAdded(ctx context.Context, sessionID string, line cart.Line) {
	h.unicast(ctx, sessionID, EventItemAdded, itemAddedEvent{
		Type:     EventItemAdded,
		CartLine: line,
	})
}

// CartChanged implements cart.Notifier: every successful mutation
// pushes the fresh summary to the session that owns the cart.
func (h *Hub) CartChanged(ctx context.Context, sessionID string, summary cart.Summary) {
	h.unicast(ctx, sessionID, EventCartSync, cartSyncEvent{
		Type:      EventCartSync,
		SessionID: sessionID,
		Summary:   summary,
	})
}

// PositionUpdated implements position.Notifier: positions fan out to
// every connected session, the reporter included.
func (h *Hub) PositionUpdated(ctx context.Context, pos position.Position) {
	h.broadcast(ctx, EventPositionUpdated, positionUpdatedEvent{
		Type:      EventPositionUpdated,
		SessionID: pos.SessionID,
		Position:  pos,
	})
}
