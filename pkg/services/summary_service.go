package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dialectic-dev/dialectic/ent"
	"github.com/dialectic-dev/dialectic/ent/claimsummary"
)

// SummaryService persists the rolling claim summary, one row per session.
type SummaryService struct {
	client *ent.Client
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(client *ent.Client) *SummaryService {
	return &SummaryService{client: client}
}

// UpsertSummary replaces the session's summary.
func (s *SummaryService) UpsertSummary(ctx context.Context, sessionID, summary string, cycle int) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	existing, err := s.client.ClaimSummary.Query().
		Where(claimsummary.SessionIDEQ(sessionID)).
		Only(writeCtx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetSummary(summary).
			SetCycle(cycle).
			Save(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to update claim summary: %w", err)
		}
		return nil
	case ent.IsNotFound(err):
		_, err = s.client.ClaimSummary.Create().
			SetSessionID(sessionID).
			SetSummary(summary).
			SetCycle(cycle).
			Save(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to create claim summary: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("failed to query claim summary: %w", err)
	}
}

// GetSummary returns the session's summary.
func (s *SummaryService) GetSummary(ctx context.Context, sessionID string) (*ent.ClaimSummary, error) {
	row, err := s.client.ClaimSummary.Query().
		Where(claimsummary.SessionIDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get claim summary: %w", err)
	}
	return row, nil
}
