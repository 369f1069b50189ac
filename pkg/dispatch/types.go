// Package dispatch fans a cycle's scheduled agents out onto goroutines,
// enforces the cycle deadline, and aggregates partial results. Agent
// failures never propagate: every scheduled role yields exactly one slot
// in the outcome, successful or not.
package dispatch

import (
	"context"

	"github.com/dialectic-dev/dialectic/pkg/agent"
)

// ErrorKind classifies a failed agent slot.
type ErrorKind string

const (
	// ErrorTimeout — the agent was still running at the cycle deadline.
	ErrorTimeout ErrorKind = "timeout"
	// ErrorCrashed — the agent panicked or returned an error.
	ErrorCrashed ErrorKind = "agent_crashed"
	// ErrorInvalidAgent — no agent is registered for the scheduled role.
	ErrorInvalidAgent ErrorKind = "invalid_agent"
)

// AgentError describes a failed slot.
type AgentError struct {
	Kind   ErrorKind  `json:"kind"`
	Role   agent.Role `json:"role"`
	Reason string     `json:"reason,omitempty"`
}

// Result is one slot of a cycle's dispatch: either a proposal or an error,
// never both. ContributionID links a successful slot to its persisted
// contribution row (empty when recording failed — recording is
// best-effort).
type Result struct {
	Role           agent.Role      `json:"role"`
	Proposal       *agent.Proposal `json:"proposal,omitempty"`
	Err            *AgentError     `json:"error,omitempty"`
	ContributionID string          `json:"contribution_id,omitempty"`
}

// OK reports whether the slot carries a usable proposal.
func (r *Result) OK() bool { return r.Err == nil && r.Proposal != nil }

// Outcome aggregates one cycle's dispatch. Results are in completion
// order, which is unspecified; downstream code must be order-insensitive.
type Outcome struct {
	Results  []Result
	Timeouts int
	Errors   int
}

// Successes counts slots that produced a proposal.
func (o *Outcome) Successes() int {
	n := 0
	for i := range o.Results {
		if o.Results[i].OK() {
			n++
		}
	}
	return n
}

// Contribution is the persisted record of one agent proposal. Acceptance
// is flagged later by the runner after arbitration.
type Contribution struct {
	SessionID       string
	Cycle           int
	Role            agent.Role
	Model           string
	Output          agent.Output
	ConfidenceDelta float64
}

// ContributionRecorder persists contributions. Implemented by
// services.ContributionService; tests use an in-memory fake.
type ContributionRecorder interface {
	RecordContribution(ctx context.Context, c Contribution) (string, error)
}
