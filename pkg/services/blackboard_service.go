package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dialectic-dev/dialectic/ent"
	"github.com/dialectic-dev/dialectic/ent/blackboardrecord"
	"github.com/dialectic-dev/dialectic/ent/cemeteryentry"
	"github.com/dialectic-dev/dialectic/ent/frontieridea"
	"github.com/dialectic-dev/dialectic/pkg/blackboard"
)

// BlackboardService persists blackboard state: the mutable per-session
// record, its append-only snapshot history, and the frontier/cemetery
// mirror tables.
type BlackboardService struct {
	client *ent.Client
}

// NewBlackboardService creates a new BlackboardService.
func NewBlackboardService(client *ent.Client) *BlackboardService {
	return &BlackboardService{client: client}
}

// SaveBlackboard upserts the session's blackboard record and synchronizes
// the frontier and cemetery mirror rows. Idempotent per cycle.
func (s *BlackboardService) SaveBlackboard(ctx context.Context, blackboardID string, snap *blackboard.Snapshot) error {
	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	frontiers, err := toJSONSlice(snap.FrontierPool)
	if err != nil {
		return fmt.Errorf("failed to encode frontier pool: %w", err)
	}
	cemetery, err := toJSONSlice(snap.Cemetery)
	if err != nil {
		return fmt.Errorf("failed to encode cemetery: %w", err)
	}
	graduated, err := toJSONSlice(snap.GraduatedClaims)
	if err != nil {
		return fmt.Errorf("failed to encode graduated claims: %w", err)
	}

	existing, err := s.client.BlackboardRecord.Query().
		Where(blackboardrecord.IDEQ(blackboardID)).
		Only(writeCtx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetCurrentClaim(snap.CurrentClaim).
			SetSupportStrength(snap.SupportStrength).
			SetActiveObjection(snap.ActiveObjection).
			SetAnalogyOfRecord(snap.AnalogyOfRecord).
			SetCycleCount(snap.CycleCount).
			SetFrontierPool(frontiers).
			SetCemetery(cemetery).
			SetGraduatedClaims(graduated).
			SetTranslatorFrameworks(snap.TranslatorFrameworks).
			Save(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to update blackboard record: %w", err)
		}
	case ent.IsNotFound(err):
		create := s.client.BlackboardRecord.Create().
			SetID(blackboardID).
			SetSessionID(snap.SessionID).
			SetSeedClaim(snap.SeedClaim).
			SetCurrentClaim(snap.CurrentClaim).
			SetSupportStrength(snap.SupportStrength).
			SetActiveObjection(snap.ActiveObjection).
			SetAnalogyOfRecord(snap.AnalogyOfRecord).
			SetCycleCount(snap.CycleCount).
			SetFrontierPool(frontiers).
			SetCemetery(cemetery).
			SetGraduatedClaims(graduated).
			SetTranslatorFrameworks(snap.TranslatorFrameworks)
		if snap.CostLimitUSD > 0 {
			create.SetCostLimitUsd(snap.CostLimitUSD)
		}
		if _, err := create.Save(writeCtx); err != nil {
			return fmt.Errorf("failed to create blackboard record: %w", err)
		}
	default:
		return fmt.Errorf("failed to query blackboard record: %w", err)
	}

	if err := s.syncFrontiers(writeCtx, snap); err != nil {
		return err
	}
	return s.appendCemetery(writeCtx, snap)
}

// syncFrontiers mirrors the in-memory frontier pool into frontier_ideas.
func (s *BlackboardService) syncFrontiers(ctx context.Context, snap *blackboard.Snapshot) error {
	for id, f := range snap.FrontierPool {
		existing, err := s.client.FrontierIdea.Query().
			Where(frontieridea.SessionIDEQ(snap.SessionID), frontieridea.IdeaIDEQ(id)).
			Only(ctx)
		switch {
		case err == nil:
			_, err = existing.Update().
				SetSponsorCount(f.SponsorCount).
				SetCyclesAlive(f.CyclesAlive).
				SetActivated(f.Activated).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to update frontier idea %s: %w", id, err)
			}
		case ent.IsNotFound(err):
			_, err = s.client.FrontierIdea.Create().
				SetSessionID(snap.SessionID).
				SetIdeaID(id).
				SetIdeaText(f.IdeaText).
				SetSponsorCount(f.SponsorCount).
				SetCyclesAlive(f.CyclesAlive).
				SetActivated(f.Activated).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to create frontier idea %s: %w", id, err)
			}
		default:
			return fmt.Errorf("failed to query frontier idea %s: %w", id, err)
		}
	}
	return nil
}

// appendCemetery appends the cemetery tail that persistence has not seen
// yet. The in-memory cemetery is append-only, so a row count is a cursor.
func (s *BlackboardService) appendCemetery(ctx context.Context, snap *blackboard.Snapshot) error {
	have, err := s.client.CemeteryEntry.Query().
		Where(cemeteryentry.SessionIDEQ(snap.SessionID)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count cemetery entries: %w", err)
	}
	for _, entry := range snap.Cemetery[min(have, len(snap.Cemetery)):] {
		_, err := s.client.CemeteryEntry.Create().
			SetSessionID(snap.SessionID).
			SetClaim(entry.Claim).
			SetCauseOfDeath(entry.CauseOfDeath).
			SetFinalSupport(entry.FinalSupport).
			SetCycleKilled(entry.CycleKilled).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create cemetery entry: %w", err)
		}
	}
	return nil
}

// AppendSnapshot writes one timestamped history row.
func (s *BlackboardService) AppendSnapshot(ctx context.Context, blackboardID string, snap *blackboard.Snapshot) error {
	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	state, err := toJSONMap(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	_, err = s.client.BlackboardSnapshot.Create().
		SetBlackboardID(blackboardID).
		SetSessionID(snap.SessionID).
		SetCycle(snap.CycleCount).
		SetState(state).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to append blackboard snapshot: %w", err)
	}
	return nil
}

// GetBlackboard returns the persisted record for a session.
func (s *BlackboardService) GetBlackboard(ctx context.Context, sessionID string) (*ent.BlackboardRecord, error) {
	rec, err := s.client.BlackboardRecord.Query().
		Where(blackboardrecord.SessionIDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blackboard record: %w", err)
	}
	return rec, nil
}

// toJSONMap round-trips a value through JSON into a generic map.
func toJSONMap(v any) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// toJSONSlice round-trips a collection through JSON into generic maps.
func toJSONSlice(v any) ([]map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	// Maps serialize to JSON objects; normalize both shapes to a slice.
	var out []map[string]interface{}
	if err := json.Unmarshal(raw, &out); err == nil {
		return out, nil
	}
	var m map[string]map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	for _, item := range m {
		out = append(out, item)
	}
	return out, nil
}
