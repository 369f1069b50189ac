package runner

import (
	"context"
	"math/rand/v2"

	"github.com/dialectic-dev/dialectic/pkg/blackboard"
	"github.com/dialectic-dev/dialectic/pkg/dispatch"
	"github.com/dialectic-dev/dialectic/pkg/events"
	"github.com/dialectic-dev/dialectic/pkg/scheduler"
	"github.com/dialectic-dev/dialectic/pkg/trajectory"
)

// BlackboardPersister stores the mutable blackboard record and append-only
// snapshot history. Implemented by services.BlackboardService.
type BlackboardPersister interface {
	// SaveBlackboard upserts the session's blackboard record. Idempotent
	// per cycle.
	SaveBlackboard(ctx context.Context, blackboardID string, snap *blackboard.Snapshot) error
	// AppendSnapshot writes one timestamped history row.
	AppendSnapshot(ctx context.Context, blackboardID string, snap *blackboard.Snapshot) error
}

// AcceptanceMarker flags persisted contribution rows as accepted.
type AcceptanceMarker interface {
	MarkAccepted(ctx context.Context, contributionIDs []string) error
}

// CostQuerier sums the recorded language-model spend for a session.
type CostQuerier interface {
	SessionCost(ctx context.Context, sessionID string) (float64, error)
}

// Summarizer refreshes the rolling claim summary. Called in the background
// at the end of every cycle; failures are logged and ignored.
type Summarizer interface {
	Summarize(ctx context.Context, snap *blackboard.Snapshot) error
}

// ClaimChange describes a claim moving between two cycle boundaries.
type ClaimChange struct {
	SessionID   string
	Cycle       int
	FromClaim   string
	ToClaim     string
	FromSupport float64
	ToSupport   float64
}

// ChangeDetector classifies and records claim transitions. Called in the
// background; failures are logged and ignored.
type ChangeDetector interface {
	Detect(ctx context.Context, change ClaimChange) error
}

// Deps wires the runner to the rest of the engine. Scheduler, Dispatcher,
// Trajectory and Publisher are required; the persistence collaborators may
// be nil, which disables the corresponding best-effort work.
type Deps struct {
	Scheduler  *scheduler.Scheduler
	Dispatcher *dispatch.Dispatcher
	Trajectory *trajectory.Store
	Publisher  *events.Publisher

	Blackboards    BlackboardPersister
	Contributions  AcceptanceMarker
	Costs          CostQuerier
	Summarizer     Summarizer
	ChangeDetector ChangeDetector

	// Rand feeds the perturbation draw and frontier selection. May be
	// nil; a process-local source is used then.
	Rand *rand.Rand
}
