package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/smartaisle/smartcart-backend/internal/realtime"
	"github.com/smartaisle/smartcart-backend/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The shopping app runs on a separate origin in dev; session ids
	// carry no credentials, so the origin check stays open.
	CheckOrigin: func(*http.Request) bool { return true },
}

// WebSocket upgrades the connection and hands it to the hub for the
// lifetime of the session. Clients without a sessionId query
// parameter get a generated one.
func WebSocket(hub *realtime.Hub, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := strings.TrimSpace(r.URL.Query().Get("sessionId"))
		if sessionID == "" {
			sessionID = fmt.Sprintf("session_%d", time.Now().UnixMilli())
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade already wrote the HTTP error response.
			logg.Error(r.Context(), "websocket upgrade failed", err)
			return
		}

		ctx := logg.WithSessionID(r.Context(), sessionID)
		logg.Info(ctx, "websocket session opened")
		hub.ServeConn(ctx, conn, sessionID)
		logg.Info(ctx, "websocket session closed")
	}
}
