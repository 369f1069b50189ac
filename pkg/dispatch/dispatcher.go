package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dialectic-dev/dialectic/pkg/agent"
	"github.com/dialectic-dev/dialectic/pkg/blackboard"
)

// Dispatcher runs scheduled agents concurrently against a shared snapshot.
type Dispatcher struct {
	provider agent.Provider
	recorder ContributionRecorder
}

// New creates a dispatcher. recorder may be nil (contributions not
// persisted — tests only).
func New(provider agent.Provider, recorder ContributionRecorder) *Dispatcher {
	return &Dispatcher{provider: provider, recorder: recorder}
}

// Dispatch runs every role on its own goroutine with a single shared
// deadline and collects one slot per role. Agents see only the snapshot;
// they never share mutable state. On deadline, still-running agents are
// cancelled and their slots marked as timeouts. Successful proposals are
// recorded as contribution rows before the outcome is returned.
func (d *Dispatcher) Dispatch(
	ctx context.Context,
	roles []agent.Role,
	snap *blackboard.Snapshot,
	cycle int,
	timeout time.Duration,
) *Outcome {
	outcome := &Outcome{}
	if len(roles) == 0 {
		return outcome
	}

	cycleCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type slot struct {
		role     agent.Role
		proposal *agent.Proposal
		err      error
	}
	resultsCh := make(chan slot, len(roles))

	launched := 0
	for _, role := range roles {
		a, ok := d.provider.Get(role)
		if !ok {
			outcome.Results = append(outcome.Results, Result{
				Role: role,
				Err:  &AgentError{Kind: ErrorInvalidAgent, Role: role},
			})
			outcome.Errors++
			continue
		}
		launched++
		go func(role agent.Role, a agent.Agent) {
			defer func() {
				if r := recover(); r != nil {
					resultsCh <- slot{role: role, err: fmt.Errorf("panic: %v", r)}
				}
			}()
			p, err := a.Execute(cycleCtx, snap)
			resultsCh <- slot{role: role, proposal: p, err: err}
		}(role, a)
	}

	pending := make(map[agent.Role]bool, launched)
	for _, role := range roles {
		if _, ok := d.provider.Get(role); ok {
			pending[role] = true
		}
	}

	for received := 0; received < launched; {
		select {
		case s := <-resultsCh:
			received++
			delete(pending, s.role)
			outcome.Results = append(outcome.Results, d.slotResult(ctx, s.role, s.proposal, s.err, snap, cycle, outcome))

		case <-cycleCtx.Done():
			// Deadline or caller cancellation: remaining agents are
			// cancelled, their partial work discarded.
			for role := range pending {
				outcome.Results = append(outcome.Results, Result{
					Role: role,
					Err:  &AgentError{Kind: ErrorTimeout, Role: role},
				})
				outcome.Timeouts++
			}
			return outcome
		}
	}
	return outcome
}

// slotResult converts a raw goroutine result into a slot, classifying
// failures and recording successful proposals.
func (d *Dispatcher) slotResult(
	ctx context.Context,
	role agent.Role,
	proposal *agent.Proposal,
	execErr error,
	snap *blackboard.Snapshot,
	cycle int,
	outcome *Outcome,
) Result {
	if execErr != nil {
		if errors.Is(execErr, context.DeadlineExceeded) {
			outcome.Timeouts++
			return Result{Role: role, Err: &AgentError{Kind: ErrorTimeout, Role: role}}
		}
		outcome.Errors++
		return Result{
			Role: role,
			Err:  &AgentError{Kind: ErrorCrashed, Role: role, Reason: execErr.Error()},
		}
	}
	if proposal == nil || proposal.Output == nil {
		outcome.Errors++
		return Result{
			Role: role,
			Err:  &AgentError{Kind: ErrorCrashed, Role: role, Reason: "agent returned no proposal"},
		}
	}

	res := Result{Role: role, Proposal: proposal}
	if d.recorder != nil {
		// Recording is best-effort: a failed insert loses the audit row,
		// not the proposal.
		id, err := d.recorder.RecordContribution(ctx, Contribution{
			SessionID:       snap.SessionID,
			Cycle:           cycle,
			Role:            role,
			Model:           proposal.Model,
			Output:          proposal.Output,
			ConfidenceDelta: proposal.ConfidenceDelta,
		})
		if err != nil {
			slog.Warn("Failed to record contribution",
				"session_id", snap.SessionID, "cycle", cycle, "role", role, "error", err)
		} else {
			res.ContributionID = id
		}
	}
	return res
}
