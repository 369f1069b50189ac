// Package trajectory tracks the embedding trajectory of a session's claim
// sequence and provides the pure novelty and stagnation functions defined
// over it.
package trajectory

import (
	"context"
	"fmt"

	"github.com/dialectic-dev/dialectic/pkg/embedding"
)

// Point is one trajectory sample: the embedded claim at the end of a
// completed cycle. Points are append-only.
type Point struct {
	SessionID       string    `json:"session_id"`
	CycleNumber     int       `json:"cycle_number"`
	Embedding       []float32 `json:"embedding"`
	ClaimText       string    `json:"claim_text"`
	SupportStrength float64   `json:"support_strength"`
}

// Persister stores and retrieves trajectory points. Implemented by
// services.TrajectoryService; tests use an in-memory fake.
type Persister interface {
	AppendPoint(ctx context.Context, p Point) error
	Trajectory(ctx context.Context, sessionID string) ([]Point, error)
}

// Store couples the embedding cache with trajectory persistence.
type Store struct {
	embedder  embedding.Embedder
	persister Persister
}

// NewStore creates a trajectory store. embedder is typically an
// *embedding.Cache so repeated claims embed once per process.
func NewStore(embedder embedding.Embedder, persister Persister) *Store {
	return &Store{embedder: embedder, persister: persister}
}

// Embed returns the embedding for text via the underlying (cached)
// embedder.
func (s *Store) Embed(ctx context.Context, text string) ([]float32, error) {
	return s.embedder.Embed(ctx, text)
}

// Append records the trajectory point for a completed cycle.
func (s *Store) Append(ctx context.Context, p Point) error {
	if p.CycleNumber < 0 {
		return fmt.Errorf("cycle number must be non-negative, got %d", p.CycleNumber)
	}
	if len(p.Embedding) == 0 {
		return fmt.Errorf("trajectory point requires an embedding")
	}
	return s.persister.AppendPoint(ctx, p)
}

// Trajectory returns the session's points ordered by ascending cycle.
func (s *Store) Trajectory(ctx context.Context, sessionID string) ([]Point, error) {
	return s.persister.Trajectory(ctx, sessionID)
}
