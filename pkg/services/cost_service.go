package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dialectic-dev/dialectic/ent"
	"github.com/dialectic-dev/dialectic/ent/llmcost"
)

// CostService persists language-model cost accruals and answers the
// runner's cost-limit query.
type CostService struct {
	client *ent.Client
}

// NewCostService creates a new CostService.
func NewCostService(client *ent.Client) *CostService {
	return &CostService{client: client}
}

// RecordCost writes one accrual row.
func (s *CostService) RecordCost(ctx context.Context, sessionID string, cycle int, role, model string, costUSD float64) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.client.LLMCost.Create().
		SetSessionID(sessionID).
		SetCycle(cycle).
		SetRole(role).
		SetModel(model).
		SetCostUsd(costUSD).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to record cost: %w", err)
	}
	return nil
}

// SessionCost sums the recorded spend for a session.
func (s *CostService) SessionCost(ctx context.Context, sessionID string) (float64, error) {
	// The sum over zero rows scans as NULL, hence the pointer.
	var agg []struct {
		Sum *float64 `json:"sum"`
	}
	err := s.client.LLMCost.Query().
		Where(llmcost.SessionIDEQ(sessionID)).
		Aggregate(ent.Sum(llmcost.FieldCostUsd)).
		Scan(ctx, &agg)
	if err != nil {
		return 0, fmt.Errorf("failed to sum session cost: %w", err)
	}
	if len(agg) == 0 || agg[0].Sum == nil {
		return 0, nil
	}
	return *agg[0].Sum, nil
}
