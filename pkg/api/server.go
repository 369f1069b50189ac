// Package api exposes the HTTP surface: session lifecycle verbs, session
// data reads, health, and the WebSocket event stream.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/dialectic-dev/dialectic/pkg/database"
	"github.com/dialectic-dev/dialectic/pkg/events"
	"github.com/dialectic-dev/dialectic/pkg/registry"
	"github.com/dialectic-dev/dialectic/pkg/services"
)

// Services bundles the persistence services the handlers read from. Any
// of them may be nil when the server runs without a database.
type Services struct {
	Blackboards   *services.BlackboardService
	Contributions *services.ContributionService
	Trajectories  *services.TrajectoryService
	Transitions   *services.TransitionService
	Summaries     *services.SummaryService
}

// Server is the HTTP API server.
type Server struct {
	registry    *registry.Registry
	svcs        Services
	db          *database.Client           // may be nil
	connManager *events.ConnectionManager  // may be nil
	wsOrigins   []string
}

// NewServer creates an API server.
func NewServer(reg *registry.Registry, svcs Services, db *database.Client, connManager *events.ConnectionManager, wsOrigins []string) *Server {
	return &Server{
		registry:    reg,
		svcs:        svcs,
		db:          db,
		connManager: connManager,
		wsOrigins:   wsOrigins,
	}
}

// Handler builds the gin engine with all routes registered.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.Health)
	r.GET("/ws", s.HandleWebSocket)

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/sessions", s.CreateSession)
		apiGroup.GET("/sessions", s.ListSessions)
		apiGroup.GET("/sessions/:id", s.GetSession)
		apiGroup.POST("/sessions/:id/pause", s.PauseSession)
		apiGroup.POST("/sessions/:id/resume", s.ResumeSession)
		apiGroup.POST("/sessions/:id/stop", s.StopSession)
		apiGroup.GET("/sessions/:id/blackboard", s.GetBlackboard)
		apiGroup.GET("/sessions/:id/trajectory", s.GetTrajectory)
		apiGroup.GET("/sessions/:id/contributions", s.GetContributions)
		apiGroup.GET("/sessions/:id/transitions", s.GetTransitions)
		apiGroup.GET("/sessions/:id/summary", s.GetSummary)
	}

	return r
}
