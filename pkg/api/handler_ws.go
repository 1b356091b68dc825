package api

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// wsHandler handles GET /ws: upgrades the connection and hands it to the
// connection manager, which owns the subscribe/catchup protocol.
func (s *Server) wsHandler(c *gin.Context) {
	if s.connManager == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "WebSocket not available"})
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: s.wsOriginPatterns(),
	})
	if err != nil {
		slog.Warn("WebSocket upgrade failed", "error", err, "origin", c.GetHeader("Origin"))
		return
	}

	s.connManager.HandleConnection(c.Request.Context(), conn)
}

// wsOriginPatterns returns the allowed origin host patterns: the dashboard
// host plus any configured extras.
func (s *Server) wsOriginPatterns() []string {
	patterns := make([]string, 0, len(s.allowedWSOrigins)+1)
	if s.dashboardURL != "" {
		if u, err := url.Parse(s.dashboardURL); err == nil && u.Host != "" {
			patterns = append(patterns, u.Host)
		}
	}
	patterns = append(patterns, s.allowedWSOrigins...)
	return patterns
}
