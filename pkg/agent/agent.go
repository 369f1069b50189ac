package agent

import (
	"context"
	"sync"

	"github.com/dialectic-dev/dialectic/pkg/blackboard"
)

// Proposal is the envelope an agent returns to the dispatcher.
type Proposal struct {
	Role            Role    `json:"role"`
	Model           string  `json:"model_used"`
	Output          Output  `json:"output"`
	ConfidenceDelta float64 `json:"confidence_delta"`
}

// Agent is a single reasoning agent. Execute receives an immutable
// blackboard snapshot and returns a proposal; it must honor ctx
// cancellation since it typically wraps a language-model call.
type Agent interface {
	Role() Role
	Execute(ctx context.Context, snap *blackboard.Snapshot) (*Proposal, error)
}

// Func adapts a plain function to the Agent interface.
type Func struct {
	AgentRole Role
	Fn        func(ctx context.Context, snap *blackboard.Snapshot) (*Proposal, error)
}

func (f Func) Role() Role { return f.AgentRole }

func (f Func) Execute(ctx context.Context, snap *blackboard.Snapshot) (*Proposal, error) {
	return f.Fn(ctx, snap)
}

// Provider resolves roles to runnable agents. The dispatcher consults it
// for every scheduled role; an unresolved role becomes an invalid_agent
// slot in the cycle result.
type Provider interface {
	Get(role Role) (Agent, bool)
}

// Registry is a concurrency-safe Provider backed by a map.
type Registry struct {
	mu     sync.RWMutex
	agents map[Role]Agent
}

// NewRegistry creates an empty agent registry.
func NewRegistry() *Registry {
	return &Registry{agents: make(map[Role]Agent)}
}

// Register adds or replaces the agent for a role.
func (r *Registry) Register(a Agent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.agents[a.Role()] = a
}

// Get returns the agent registered for the role.
func (r *Registry) Get(role Role) (Agent, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.agents[role]
	return a, ok
}

// Roles returns the roles with a registered agent.
func (r *Registry) Roles() []Role {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Role, 0, len(r.agents))
	for role := range r.agents {
		out = append(out, role)
	}
	return out
}
