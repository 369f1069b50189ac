package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dialectic-dev/dialectic/pkg/models"
	"github.com/dialectic-dev/dialectic/pkg/registry"
)

// CreateSession handles POST /api/sessions.
func (s *Server) CreateSession(c *gin.Context) {
	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	id, err := s.registry.Start(c.Request.Context(), &req.SessionConfig)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.CreateSessionResponse{
		SessionID: id,
		Status:    string(registry.StatusRunning),
	})
}

// ListSessions handles GET /api/sessions.
func (s *Server) ListSessions(c *gin.Context) {
	infos := s.registry.List()
	resp := make([]models.SessionResponse, 0, len(infos))
	for i := range infos {
		resp = append(resp, models.FromSessionInfo(&infos[i], false))
	}
	c.JSON(http.StatusOK, resp)
}

// GetSession handles GET /api/sessions/:id.
func (s *Server) GetSession(c *gin.Context) {
	info, err := s.registry.GetInfo(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.FromSessionInfo(info, true))
}

// PauseSession handles POST /api/sessions/:id/pause.
func (s *Server) PauseSession(c *gin.Context) {
	if err := s.registry.Pause(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(registry.StatusPaused)})
}

// ResumeSession handles POST /api/sessions/:id/resume.
func (s *Server) ResumeSession(c *gin.Context) {
	if err := s.registry.Resume(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(registry.StatusRunning)})
}

// StopSession handles POST /api/sessions/:id/stop.
func (s *Server) StopSession(c *gin.Context) {
	if err := s.registry.Stop(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(registry.StatusStopped)})
}

// GetBlackboard handles GET /api/sessions/:id/blackboard: the live
// in-memory snapshot.
func (s *Server) GetBlackboard(c *gin.Context) {
	snap, err := s.registry.SessionSnapshot(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.BlackboardResponse{Snapshot: snap})
}

// GetTrajectory handles GET /api/sessions/:id/trajectory.
func (s *Server) GetTrajectory(c *gin.Context) {
	if s.svcs.Trajectories == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "persistence disabled"})
		return
	}
	points, err := s.svcs.Trajectories.Trajectory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]models.TrajectoryPointResponse, 0, len(points))
	for _, p := range points {
		resp = append(resp, models.TrajectoryPointResponse{
			CycleNumber:     p.CycleNumber,
			ClaimText:       p.ClaimText,
			SupportStrength: p.SupportStrength,
			Dimension:       len(p.Embedding),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// GetContributions handles GET /api/sessions/:id/contributions.
func (s *Server) GetContributions(c *gin.Context) {
	if s.svcs.Contributions == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "persistence disabled"})
		return
	}
	rows, err := s.svcs.Contributions.ListContributions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]models.ContributionResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, models.ContributionResponse{
			ContributionID:  row.ID,
			Cycle:           row.Cycle,
			Role:            row.Role,
			Model:           row.Model,
			Output:          row.Output,
			ConfidenceDelta: row.ConfidenceDelta,
			Accepted:        row.Accepted,
			CreatedAt:       row.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// GetTransitions handles GET /api/sessions/:id/transitions.
func (s *Server) GetTransitions(c *gin.Context) {
	if s.svcs.Transitions == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "persistence disabled"})
		return
	}
	rows, err := s.svcs.Transitions.ListTransitions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]models.TransitionResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, models.TransitionResponse{
			Cycle:       row.Cycle,
			Transition:  string(row.Transition),
			FromClaim:   row.FromClaim,
			ToClaim:     row.ToClaim,
			FromSupport: row.FromSupport,
			ToSupport:   row.ToSupport,
			CreatedAt:   row.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// GetSummary handles GET /api/sessions/:id/summary.
func (s *Server) GetSummary(c *gin.Context) {
	if s.svcs.Summaries == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "persistence disabled"})
		return
	}
	row, err := s.svcs.Summaries.GetSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SummaryResponse{
		SessionID: row.SessionID,
		Summary:   row.Summary,
		Cycle:     row.Cycle,
		UpdatedAt: row.UpdatedAt,
	})
}
