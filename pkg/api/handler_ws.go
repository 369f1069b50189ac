package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"

	"github.com/dialectic-dev/dialectic/pkg/models"
)

// HandleWebSocket upgrades GET /ws and hands the connection to the
// ConnectionManager, which blocks until the client disconnects.
func (s *Server) HandleWebSocket(c *gin.Context) {
	if s.connManager == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "WebSocket not available"})
		return
	}

	opts := &websocket.AcceptOptions{}
	if len(s.wsOrigins) > 0 {
		opts.OriginPatterns = s.wsOrigins
	} else {
		opts.InsecureSkipVerify = true
	}

	conn, err := websocket.Accept(c.Writer, c.Request, opts)
	if err != nil {
		return
	}
	s.connManager.HandleConnection(c.Request.Context(), conn)
}
