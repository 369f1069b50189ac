// Package models holds the API request and response shapes.
package models

import (
	"time"

	"github.com/dialectic-dev/dialectic/pkg/blackboard"
	"github.com/dialectic-dev/dialectic/pkg/config"
	"github.com/dialectic-dev/dialectic/pkg/registry"
)

// CreateSessionRequest is the POST /api/sessions body: a session config,
// with unset fields filled from the service defaults.
type CreateSessionRequest struct {
	config.SessionConfig
}

// CreateSessionResponse returns the assigned session id.
type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
}

// SessionResponse is the get_info projection.
type SessionResponse struct {
	SessionID    string                `json:"session_id"`
	Status       string                `json:"status"`
	BlackboardID string                `json:"blackboard_id"`
	CycleCount   int                   `json:"cycle_count"`
	Config       *config.SessionConfig `json:"config,omitempty"`
}

// FromSessionInfo converts a registry projection.
func FromSessionInfo(info *registry.SessionInfo, includeConfig bool) SessionResponse {
	resp := SessionResponse{
		SessionID:    info.SessionID,
		Status:       string(info.Status),
		BlackboardID: info.BlackboardID,
		CycleCount:   info.CycleCount,
	}
	if includeConfig {
		resp.Config = info.Config
	}
	return resp
}

// BlackboardResponse is the live blackboard snapshot projection.
type BlackboardResponse struct {
	*blackboard.Snapshot
}

// TrajectoryPointResponse is one trajectory sample. The embedding itself
// stays server-side; clients get the movement-relevant scalars.
type TrajectoryPointResponse struct {
	CycleNumber     int     `json:"cycle_number"`
	ClaimText       string  `json:"claim_text"`
	SupportStrength float64 `json:"support_strength"`
	Dimension       int     `json:"dimension"`
}

// ContributionResponse is one persisted agent contribution.
type ContributionResponse struct {
	ContributionID  string                 `json:"contribution_id"`
	Cycle           int                    `json:"cycle"`
	Role            string                 `json:"role"`
	Model           string                 `json:"model,omitempty"`
	Output          map[string]interface{} `json:"output,omitempty"`
	ConfidenceDelta float64                `json:"confidence_delta"`
	Accepted        bool                   `json:"accepted"`
	CreatedAt       time.Time              `json:"created_at"`
}

// TransitionResponse is one classified claim transition.
type TransitionResponse struct {
	Cycle       int       `json:"cycle"`
	Transition  string    `json:"transition"`
	FromClaim   string    `json:"from_claim,omitempty"`
	ToClaim     string    `json:"to_claim,omitempty"`
	FromSupport float64   `json:"from_support"`
	ToSupport   float64   `json:"to_support"`
	CreatedAt   time.Time `json:"created_at"`
}

// SummaryResponse is the rolling session summary.
type SummaryResponse struct {
	SessionID string    `json:"session_id"`
	Summary   string    `json:"summary"`
	Cycle     int       `json:"cycle"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error      string   `json:"error"`
	Violations []string `json:"violations,omitempty"`
}
