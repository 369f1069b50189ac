// Package runner drives one reasoning session: a per-session state machine
// that executes the cycle pipeline against the session's blackboard,
// fanning agents out through the dispatcher and applying arbiter verdicts.
// The runner is single-threaded internally; only agent execution is
// concurrent.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dialectic-dev/dialectic/pkg/blackboard"
	"github.com/dialectic-dev/dialectic/pkg/config"
	"github.com/dialectic-dev/dialectic/pkg/events"
)

// State is the runner lifecycle state.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
	StateStopped   State = "stopped"
	StateFailed    State = "failed"
)

// Terminal reports whether the state is absorbing.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateStopped || s == StateFailed
}

// Lifecycle errors returned by the command methods.
var (
	ErrAlreadyRunning = errors.New("session is already running")
	ErrNotRunning     = errors.New("session is not running")
	ErrNotPaused      = errors.New("session is not paused")
	ErrTerminal       = errors.New("session has already terminated")
)

// Termination reasons.
const (
	ReasonStopped     = "stopped"
	ReasonMaxCycles   = "max cycles reached"
	ReasonGraduated   = "claim graduated"
	ReasonNoFrontiers = "no frontiers available"
)

// Runner owns one session end to end. Construct with New, drive with
// Start/Pause/Resume/Stop; status queries are safe from any goroutine
// while a cycle is in flight.
type Runner struct {
	sessionID    string
	blackboardID string
	cfg          *config.SessionConfig
	deps         Deps
	rng          *rand.Rand

	bb *blackboard.Blackboard

	mu         sync.RWMutex
	state      State
	reason     string
	suppressed bool // cost limit reached, no further dispatch

	ticks    chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	doneOnce sync.Once

	cycleCtx    context.Context
	cycleCancel context.CancelFunc
}

// New creates an idle runner for a validated session config.
func New(sessionID string, cfg *config.SessionConfig, deps Deps) *Runner {
	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Runner{
		sessionID: sessionID,
		cfg:       cfg,
		deps:      deps,
		rng:       rng,
		state:     StateIdle,
		ticks:     make(chan struct{}, 1),
		stopCh:    make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start creates and persists the blackboard, advances to cycle 1, and
// begins self-scheduling cycles. Only legal from Idle.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.state != StateIdle {
		r.mu.Unlock()
		return ErrAlreadyRunning
	}
	r.blackboardID = uuid.New().String()

	bb, err := blackboard.New(r.sessionID, r.cfg.SeedClaim, &publisherSink{
		publisher:    r.deps.Publisher,
		sessionID:    r.sessionID,
		blackboardID: r.blackboardID,
	})
	if err != nil {
		r.mu.Unlock()
		return err
	}
	if r.cfg.CostLimitUSD > 0 {
		if err := bb.SetCostLimit(r.cfg.CostLimitUSD); err != nil {
			r.mu.Unlock()
			return err
		}
	}
	r.bb = bb

	if r.deps.Blackboards != nil {
		if err := r.deps.Blackboards.SaveBlackboard(ctx, r.blackboardID, bb.Snapshot()); err != nil {
			r.mu.Unlock()
			return fmt.Errorf("failed to persist blackboard: %w", err)
		}
	}

	bb.IncrementCycle()
	r.state = StateRunning
	r.cycleCtx, r.cycleCancel = context.WithCancel(context.Background())
	r.mu.Unlock()

	slog.Info("Session started",
		"session_id", r.sessionID,
		"blackboard_id", r.blackboardID,
		"cycle_mode", r.cfg.CycleMode,
		"max_cycles", r.cfg.MaxCycles)

	go r.loop()
	r.kick()
	return nil
}

// Pause stops self-scheduling. A cycle already in flight completes; its
// successor is not scheduled until Resume.
func (r *Runner) Pause() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch r.state {
	case StateRunning:
		r.state = StatePaused
		return nil
	case StatePaused:
		return ErrNotRunning
	case StateIdle:
		return ErrNotRunning
	default:
		return ErrTerminal
	}
}

// Resume restarts self-scheduling after a pause.
func (r *Runner) Resume() error {
	r.mu.Lock()
	switch r.state {
	case StatePaused:
		r.state = StateRunning
		r.mu.Unlock()
		r.kick()
		return nil
	case StateRunning, StateIdle:
		r.mu.Unlock()
		return ErrNotPaused
	default:
		r.mu.Unlock()
		return ErrTerminal
	}
}

// Stop requests termination. Any in-flight agent work is cancelled
// immediately; the runner drains and exits. Idempotent. Callers bound the
// wait on Done themselves.
func (r *Runner) Stop(reason string) {
	r.stopOnce.Do(func() {
		if reason == "" {
			reason = ReasonStopped
		}
		r.mu.Lock()
		if !r.state.Terminal() {
			r.reason = reason
		}
		started := r.cycleCancel != nil
		r.mu.Unlock()

		if started {
			r.cycleCancel()
		}
		close(r.stopCh)
		if !started {
			// Never started: no loop to finish the shutdown.
			r.finish(StateStopped, reason)
		}
	})
}

// Done is closed when the runner has fully terminated.
func (r *Runner) Done() <-chan struct{} { return r.done }

// State returns the current lifecycle state.
func (r *Runner) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// IsRunning reports whether the runner is actively cycling.
func (r *Runner) IsRunning() bool { return r.State() == StateRunning }

// TerminationReason returns the final state and reason; the reason is
// empty while the runner is live.
func (r *Runner) TerminationReason() (State, string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state, r.reason
}

// CycleCount returns the blackboard's cycle counter (0 before Start).
func (r *Runner) CycleCount() int {
	r.mu.RLock()
	bb := r.bb
	r.mu.RUnlock()
	if bb == nil {
		return 0
	}
	return bb.CycleCount()
}

// BlackboardID returns the blackboard identifier (empty before Start).
func (r *Runner) BlackboardID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.blackboardID
}

// Config returns the session configuration.
func (r *Runner) Config() *config.SessionConfig { return r.cfg }

// Snapshot returns the current blackboard state, or nil before Start.
func (r *Runner) Snapshot() *blackboard.Snapshot {
	r.mu.RLock()
	bb := r.bb
	r.mu.RUnlock()
	if bb == nil {
		return nil
	}
	return bb.Snapshot()
}

// loop is the runner's mailbox: ticks run cycles, stop drains.
func (r *Runner) loop() {
	for {
		select {
		case <-r.stopCh:
			r.finish(StateStopped, r.stopReason())
			return
		case <-r.ticks:
			if r.State() != StateRunning {
				// Paused before the tick fired; Resume re-kicks.
				continue
			}
			res := r.runCycle()
			switch res.outcome {
			case cycleContinue:
				r.scheduleNext()
			case cycleCompleted:
				r.finish(StateCompleted, res.reason)
				return
			case cycleFailed:
				r.finish(StateFailed, res.reason)
				return
			case cycleStopped:
				r.finish(StateStopped, r.stopReason())
				return
			}
		}
	}
}

// scheduleNext queues the next cycle: immediately in event_driven mode,
// after cycle_timeout_ms in time_based mode.
func (r *Runner) scheduleNext() {
	if r.cfg.CycleMode == config.CycleModeTimeBased {
		time.AfterFunc(r.cfg.CycleTimeout(), r.kick)
		return
	}
	r.kick()
}

func (r *Runner) kick() {
	select {
	case r.ticks <- struct{}{}:
	default:
	}
}

func (r *Runner) stopReason() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.reason != "" {
		return r.reason
	}
	return ReasonStopped
}

// finish records the terminal state, emits the terminal lifecycle event,
// and releases Done waiters. First caller wins.
func (r *Runner) finish(state State, reason string) {
	r.doneOnce.Do(func() {
		r.mu.Lock()
		r.state = state
		r.reason = reason
		cancel := r.cycleCancel
		r.mu.Unlock()
		if cancel != nil {
			cancel()
		}

		cycles := r.CycleCount()
		switch state {
		case StateFailed:
			slog.Warn("Session terminated",
				"session_id", r.sessionID, "state", state, "reason", reason, "cycle_count", cycles)
		default:
			slog.Info("Session terminated",
				"session_id", r.sessionID, "state", state, "reason", reason, "cycle_count", cycles)
		}

		if r.deps.Publisher != nil {
			ctx, cancelEmit := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancelEmit()
			eventType := events.EventTypeSessionStopped
			if state == StateCompleted {
				eventType = events.EventTypeSessionCompleted
			}
			r.deps.Publisher.PublishSessionLifecycle(ctx, eventType, r.sessionID, r.blackboardID, string(state), reason)
		}

		close(r.done)
	})
}

// dispatchSuppressed reports whether the cost gate has tripped.
func (r *Runner) dispatchSuppressed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.suppressed
}

// publisherSink forwards blackboard mutations to the event bus.
type publisherSink struct {
	publisher    *events.Publisher
	sessionID    string
	blackboardID string
}

func (s *publisherSink) CycleCountChanged(sessionID string, cycle int) {
	if s.publisher != nil {
		s.publisher.PublishCycleCountChanged(sessionID, s.blackboardID, cycle)
	}
}

func (s *publisherSink) ClaimUpdated(sessionID, newClaim string, cycle int) {
	if s.publisher != nil {
		s.publisher.PublishClaimUpdated(sessionID, s.blackboardID, newClaim, cycle)
	}
}

func (s *publisherSink) SupportUpdated(sessionID string, support float64, cycle int) {
	if s.publisher != nil {
		s.publisher.PublishSupportUpdated(sessionID, s.blackboardID, support, cycle)
	}
}

func (s *publisherSink) ClaimDied(sessionID, claim, cause string, finalSupport float64, cycle int) {
	if s.publisher != nil {
		s.publisher.PublishClaimDied(context.Background(), sessionID, s.blackboardID, claim, cause, finalSupport, cycle)
	}
}

func (s *publisherSink) ClaimGraduated(sessionID, claim string, finalSupport float64, cycle int) {
	if s.publisher != nil {
		s.publisher.PublishClaimGraduated(context.Background(), sessionID, s.blackboardID, claim, finalSupport, cycle)
	}
}
