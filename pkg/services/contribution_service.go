package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dialectic-dev/dialectic/ent"
	"github.com/dialectic-dev/dialectic/ent/agentcontribution"
	"github.com/dialectic-dev/dialectic/pkg/dispatch"
)

// ContributionService persists agent contributions and their acceptance
// flags.
type ContributionService struct {
	client *ent.Client
}

// NewContributionService creates a new ContributionService.
func NewContributionService(client *ent.Client) *ContributionService {
	return &ContributionService{client: client}
}

// RecordContribution writes one contribution row and returns its id.
func (s *ContributionService) RecordContribution(ctx context.Context, c dispatch.Contribution) (string, error) {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	output, err := toJSONMap(c.Output)
	if err != nil {
		return "", fmt.Errorf("failed to encode contribution output: %w", err)
	}

	id := uuid.New().String()
	_, err = s.client.AgentContribution.Create().
		SetID(id).
		SetSessionID(c.SessionID).
		SetCycle(c.Cycle).
		SetRole(string(c.Role)).
		SetModel(c.Model).
		SetOutput(output).
		SetConfidenceDelta(c.ConfidenceDelta).
		Save(writeCtx)
	if err != nil {
		return "", fmt.Errorf("failed to record contribution: %w", err)
	}
	return id, nil
}

// MarkAccepted flags the given contribution rows accepted.
func (s *ContributionService) MarkAccepted(ctx context.Context, contributionIDs []string) error {
	if len(contributionIDs) == 0 {
		return nil
	}
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.client.AgentContribution.Update().
		Where(agentcontribution.IDIn(contributionIDs...)).
		SetAccepted(true).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to mark contributions accepted: %w", err)
	}
	return nil
}

// ListContributions returns a session's contributions ordered by cycle,
// then insertion.
func (s *ContributionService) ListContributions(ctx context.Context, sessionID string) ([]*ent.AgentContribution, error) {
	rows, err := s.client.AgentContribution.Query().
		Where(agentcontribution.SessionIDEQ(sessionID)).
		Order(ent.Asc(agentcontribution.FieldCycle), ent.Asc(agentcontribution.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}
	return rows, nil
}

// ListCycleContributions returns the contributions of one cycle.
func (s *ContributionService) ListCycleContributions(ctx context.Context, sessionID string, cycle int) ([]*ent.AgentContribution, error) {
	rows, err := s.client.AgentContribution.Query().
		Where(agentcontribution.SessionIDEQ(sessionID), agentcontribution.CycleEQ(cycle)).
		Order(ent.Asc(agentcontribution.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cycle contributions: %w", err)
	}
	return rows, nil
}
