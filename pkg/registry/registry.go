// Package registry owns the session table: it creates runners, exposes
// the lifecycle verbs, monitors runner exits, and keeps a cached cycle
// count per session from the event stream.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/dialectic-dev/dialectic/pkg/blackboard"
	"github.com/dialectic-dev/dialectic/pkg/config"
	"github.com/dialectic-dev/dialectic/pkg/events"
	"github.com/dialectic-dev/dialectic/pkg/runner"
)

// defaultStopGrace bounds how long a stop verb waits for the runner to
// drain before giving up on it.
const defaultStopGrace = 25 * time.Second

// Status is the externally visible session status.
type Status string

const (
	StatusRunning   Status = "running"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusStopped   Status = "stopped"
)

// SessionInfo is the get_info projection of a session entry.
type SessionInfo struct {
	SessionID    string                `json:"session_id"`
	Status       Status                `json:"status"`
	BlackboardID string                `json:"blackboard_id"`
	CycleCount   int                   `json:"cycle_count"`
	Config       *config.SessionConfig `json:"config"`
}

type entry struct {
	runner *runner.Runner

	mu         sync.RWMutex
	status     Status
	cycleCount int
}

func (e *entry) getStatus() Status {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.status
}

func (e *entry) setStatus(s Status) {
	e.mu.Lock()
	e.status = s
	e.mu.Unlock()
}

// setStatusIfLive records a terminal status unless one is already set.
func (e *entry) setStatusIfLive(s Status) {
	e.mu.Lock()
	if e.status == StatusRunning || e.status == StatusPaused {
		e.status = s
	}
	e.mu.Unlock()
}

func (e *entry) cycles() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cycleCount
}

// observeCycle keeps the cached count monotone.
func (e *entry) observeCycle(cycle int) {
	e.mu.Lock()
	if cycle > e.cycleCount {
		e.cycleCount = cycle
	}
	e.mu.Unlock()
}

// Registry is the singleton session table.
type Registry struct {
	runnerDeps runner.Deps
	bus        *events.Bus
	defaults   config.SessionDefaults

	// StopGrace bounds stop verbs. Tests shorten it.
	StopGrace time.Duration

	mu       sync.RWMutex
	sessions map[string]*entry
	nextID   int

	watchCancel func()
	wg          sync.WaitGroup
}

// New creates a registry. deps is the template wiring handed to every
// runner; bus, when non-nil, feeds the cached cycle counts from
// cycle_complete events.
func New(deps runner.Deps, bus *events.Bus, defaults config.SessionDefaults) *Registry {
	r := &Registry{
		runnerDeps: deps,
		bus:        bus,
		defaults:   defaults,
		StopGrace:  defaultStopGrace,
		sessions:   make(map[string]*entry),
	}
	if bus != nil {
		ch, cancel := bus.Subscribe(events.GlobalSessionsTopic)
		r.watchCancel = cancel
		r.wg.Add(1)
		go r.watchCycles(ch)
	}
	return r
}

// watchCycles consumes the global event stream and folds cycle_complete
// events into the cached counts.
func (r *Registry) watchCycles(ch <-chan []byte) {
	defer r.wg.Done()
	for payload := range ch {
		var evt struct {
			Type      string `json:"type"`
			SessionID string `json:"session_id"`
			Cycle     int    `json:"cycle"`
		}
		if err := json.Unmarshal(payload, &evt); err != nil {
			continue
		}
		if evt.Type != events.EventTypeCycleComplete {
			continue
		}
		r.mu.RLock()
		e := r.sessions[evt.SessionID]
		r.mu.RUnlock()
		if e != nil {
			e.observeCycle(evt.Cycle)
		}
	}
}

// Start validates the config, assigns a session id, spawns the runner and
// emits session_started. Returns every config violation at once.
func (r *Registry) Start(ctx context.Context, cfg *config.SessionConfig) (string, error) {
	cfg.ApplyDefaults(r.defaults)
	if violations := cfg.Validate(); len(violations) > 0 {
		return "", &ValidationError{Violations: violations}
	}

	r.mu.Lock()
	r.nextID++
	id := fmt.Sprintf("session_%06d", r.nextID)
	r.mu.Unlock()

	run := runner.New(id, cfg, r.runnerDeps)
	if err := run.Start(ctx); err != nil {
		return "", err
	}

	e := &entry{runner: run, status: StatusRunning}
	r.mu.Lock()
	r.sessions[id] = e
	r.mu.Unlock()

	if pub := r.runnerDeps.Publisher; pub != nil {
		pub.PublishSessionLifecycle(ctx, events.EventTypeSessionStarted,
			id, run.BlackboardID(), string(StatusRunning), "")
	}

	go r.monitor(id, e)
	return id, nil
}

// monitor waits for the runner to exit and records its terminal status.
// Not tracked by the registry waitgroup: an abandoned runner must not
// block StopAll.
func (r *Registry) monitor(id string, e *entry) {
	<-e.runner.Done()
	state, reason := e.runner.TerminationReason()
	switch state {
	case runner.StateCompleted:
		e.setStatusIfLive(StatusCompleted)
	default:
		e.setStatusIfLive(StatusStopped)
	}
	slog.Info("Session runner exited", "session_id", id, "state", state, "reason", reason)
}

func (r *Registry) lookup(id string) (*entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return e, nil
}

// Pause suspends self-scheduling for a running session. A cycle already in
// flight completes; running agents are never cancelled by a pause.
func (r *Registry) Pause(ctx context.Context, id string) error {
	e, err := r.lookup(id)
	if err != nil {
		return err
	}
	switch e.getStatus() {
	case StatusPaused:
		return ErrAlreadyPaused
	case StatusStopped:
		return ErrCannotPauseStopped
	case StatusCompleted:
		return ErrCannotPauseCompleted
	}
	if err := e.runner.Pause(); err != nil {
		return ErrNotRunning
	}
	e.setStatus(StatusPaused)
	if pub := r.runnerDeps.Publisher; pub != nil {
		pub.PublishSessionLifecycle(ctx, events.EventTypeSessionPaused,
			id, e.runner.BlackboardID(), string(StatusPaused), "")
	}
	return nil
}

// Resume restarts a paused session. A paused session whose cached cycle
// count already reached the limit is promoted to completed instead.
func (r *Registry) Resume(ctx context.Context, id string) error {
	e, err := r.lookup(id)
	if err != nil {
		return err
	}
	switch e.getStatus() {
	case StatusRunning:
		return ErrNotPaused
	case StatusStopped:
		return ErrCannotResumeStopped
	case StatusCompleted:
		return ErrCannotResumeCompleted
	}

	if e.cycles() >= e.runner.Config().MaxCycles {
		e.setStatus(StatusCompleted)
		e.runner.Stop(runner.ReasonMaxCycles)
		return ErrAlreadyCompleted
	}

	if err := e.runner.Resume(); err != nil {
		return ErrNotPaused
	}
	e.setStatus(StatusRunning)
	if pub := r.runnerDeps.Publisher; pub != nil {
		pub.PublishSessionLifecycle(ctx, events.EventTypeSessionResumed,
			id, e.runner.BlackboardID(), string(StatusRunning), "")
	}
	return nil
}

// Stop terminates a session from any non-terminal state, waiting up to the
// grace window for the runner to drain.
func (r *Registry) Stop(ctx context.Context, id string) error {
	e, err := r.lookup(id)
	if err != nil {
		return err
	}
	if s := e.getStatus(); s == StatusStopped || s == StatusCompleted {
		return ErrAlreadyStopped
	}
	r.stopEntry(ctx, id, e)
	return nil
}

func (r *Registry) stopEntry(ctx context.Context, id string, e *entry) {
	e.runner.Stop(runner.ReasonStopped)
	select {
	case <-e.runner.Done():
	case <-time.After(r.StopGrace):
		slog.Error("Session did not stop within the grace window; abandoning it",
			"session_id", id, "grace", r.StopGrace)
	case <-ctx.Done():
	}
	e.setStatusIfLive(StatusStopped)
}

// Status returns the session status.
func (r *Registry) Status(id string) (Status, error) {
	e, err := r.lookup(id)
	if err != nil {
		return "", err
	}
	return e.getStatus(), nil
}

// List returns every session as (id, status), sorted by id ascending.
func (r *Registry) List() []SessionInfo {
	r.mu.RLock()
	infos := make([]SessionInfo, 0, len(r.sessions))
	for id, e := range r.sessions {
		infos = append(infos, SessionInfo{
			SessionID:    id,
			Status:       e.getStatus(),
			BlackboardID: e.runner.BlackboardID(),
			CycleCount:   r.bestCycleCount(e),
			Config:       e.runner.Config(),
		})
	}
	r.mu.RUnlock()

	sort.Slice(infos, func(i, j int) bool { return infos[i].SessionID < infos[j].SessionID })
	return infos
}

// GetInfo returns the full projection of one session.
func (r *Registry) GetInfo(id string) (*SessionInfo, error) {
	e, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return &SessionInfo{
		SessionID:    id,
		Status:       e.getStatus(),
		BlackboardID: e.runner.BlackboardID(),
		CycleCount:   r.bestCycleCount(e),
		Config:       e.runner.Config(),
	}, nil
}

// GetActiveSession returns the lowest-id running session, if any.
func (r *Registry) GetActiveSession() (string, bool) {
	var active []string
	r.mu.RLock()
	for id, e := range r.sessions {
		if e.getStatus() == StatusRunning {
			active = append(active, id)
		}
	}
	r.mu.RUnlock()
	if len(active) == 0 {
		return "", false
	}
	sort.Strings(active)
	return active[0], true
}

// SessionSnapshot exposes a session's live blackboard state.
func (r *Registry) SessionSnapshot(id string) (*blackboard.Snapshot, error) {
	e, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	snap := e.runner.Snapshot()
	if snap == nil {
		return nil, ErrSessionNotFound
	}
	return snap, nil
}

// ActiveCount returns the number of running or paused sessions.
func (r *Registry) ActiveCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, e := range r.sessions {
		if s := e.getStatus(); s == StatusRunning || s == StatusPaused {
			n++
		}
	}
	return n
}

// bestCycleCount prefers the runner's live counter over the event-fed
// cache; the cache keeps serving after the runner exits.
func (r *Registry) bestCycleCount(e *entry) int {
	if live := e.runner.CycleCount(); live > e.cycles() {
		return live
	}
	return e.cycles()
}

// StopAll terminates every live session in parallel and shuts the cycle
// watcher down. Used at process shutdown.
func (r *Registry) StopAll(ctx context.Context) {
	r.mu.RLock()
	live := make(map[string]*entry)
	for id, e := range r.sessions {
		if s := e.getStatus(); s == StatusRunning || s == StatusPaused {
			live[id] = e
		}
	}
	r.mu.RUnlock()

	var wg sync.WaitGroup
	for id, e := range live {
		wg.Add(1)
		go func(id string, e *entry) {
			defer wg.Done()
			r.stopEntry(ctx, id, e)
		}(id, e)
	}
	wg.Wait()

	if r.watchCancel != nil {
		r.watchCancel()
	}
	r.wg.Wait()
}
