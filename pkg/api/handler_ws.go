package api

import (
	"net/http"
	"strings"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// wsHandler handles GET /api/v1/stream/ws. Upgrades to WebSocket and serves
// the subscribe/unsubscribe protocol implemented in websocket.go. Initial
// subscriptions can be passed as a comma-separated channels query parameter.
func (s *Server) wsHandler(c *gin.Context) {
	if s.hub == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "event streaming is not available"})
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		// Origin checks belong to the proxy in front of this service. A
		// config-driven OriginPatterns allowlist would replace this if the
		// service is ever exposed directly.
		InsecureSkipVerify: true,
	})
	if err != nil {
		return
	}

	var channels []string
	if raw := c.Query("channels"); raw != "" {
		for _, ch := range strings.Split(raw, ",") {
			if ch = strings.TrimSpace(ch); ch != "" {
				channels = append(channels, ch)
			}
		}
	}

	// Blocks until the WebSocket closes.
	s.serveWebSocket(c.Request.Context(), conn, channels)
}
