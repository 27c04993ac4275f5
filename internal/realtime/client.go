package realtime

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
)

// Client is one registered socket. The hub writes to send under its
// own lock; the write pump drains it onto the wire.
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	sessionID string

	send chan []byte
	// sendClosed is read and written only under the hub lock.
	sendClosed bool
}

// closeSend must be called with the hub lock held.
func (c *Client) closeSend() {
	if !c.sendClosed {
		c.sendClosed = true
		close(c.send)
	}
}

// ServeConn owns the socket for its lifetime: it registers the
// session, emits the connected event before any inbound frame is
// read, and pumps until the peer goes away.
func (h *Hub) ServeConn(ctx context.Context, conn *websocket.Conn, sessionID string) {
	c := &Client{
		hub:       h,
		conn:      conn,
		sessionID: sessionID,
		send:      make(chan []byte, h.cfg.SendBufferSize),
	}
	h.register(ctx, c)
	h.unicast(ctx, sessionID, EventConnected, connectedEvent{
		Type:      EventConnected,
		SessionID: sessionID,
	})

	go c.writePump()
	c.readPump(ctx)
	h.unregister(ctx, c)
}

func (c *Client) readPump(ctx context.Context) {
	defer c.conn.Close()

	c.conn.SetReadLimit(c.hub.cfg.MaxMessageBytes)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.hub.cfg.PongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.hub.cfg.PongTimeout))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.hub.logg.Warn(c.hub.logg.WithField(ctx, "error", err.Error()), "socket closed unexpectedly")
			}
			return
		}
		c.hub.handleInbound(ctx, c.sessionID, data)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(c.hub.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.cfg.WriteTimeout))
			if !ok {
				// The hub closed the channel, usually because a newer
				// connection took over the session.
				_ = c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.cfg.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
