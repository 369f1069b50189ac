package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dialectic-dev/dialectic/ent"
	"github.com/dialectic-dev/dialectic/ent/claimtransition"
)

// TransitionService persists classified claim transitions.
type TransitionService struct {
	client *ent.Client
}

// NewTransitionService creates a new TransitionService.
func NewTransitionService(client *ent.Client) *TransitionService {
	return &TransitionService{client: client}
}

// RecordTransition writes one transition row. transition must be one of
// the classified kinds (refinement, pivot, death, resurrection,
// graduation).
func (s *TransitionService) RecordTransition(ctx context.Context, sessionID string, cycle int, transition, fromClaim, toClaim string, fromSupport, toSupport float64) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.client.ClaimTransition.Create().
		SetSessionID(sessionID).
		SetCycle(cycle).
		SetTransition(claimtransition.Transition(transition)).
		SetFromClaim(fromClaim).
		SetToClaim(toClaim).
		SetFromSupport(fromSupport).
		SetToSupport(toSupport).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to record claim transition: %w", err)
	}
	return nil
}

// ListTransitions returns a session's transitions in cycle order.
func (s *TransitionService) ListTransitions(ctx context.Context, sessionID string) ([]*ent.ClaimTransition, error) {
	rows, err := s.client.ClaimTransition.Query().
		Where(claimtransition.SessionIDEQ(sessionID)).
		Order(ent.Asc(claimtransition.FieldCycle)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list claim transitions: %w", err)
	}
	return rows, nil
}
