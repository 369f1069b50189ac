package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dialectic-dev/dialectic/ent"
	"github.com/dialectic-dev/dialectic/ent/trajectorypoint"
	"github.com/dialectic-dev/dialectic/pkg/trajectory"
)

// TrajectoryService persists embedding trajectory points.
type TrajectoryService struct {
	client *ent.Client
}

// NewTrajectoryService creates a new TrajectoryService.
func NewTrajectoryService(client *ent.Client) *TrajectoryService {
	return &TrajectoryService{client: client}
}

// AppendPoint writes one trajectory row. A duplicate (session, cycle) row
// is treated as already appended and ignored.
func (s *TrajectoryService) AppendPoint(ctx context.Context, p trajectory.Point) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.client.TrajectoryPoint.Create().
		SetSessionID(p.SessionID).
		SetCycleNumber(p.CycleNumber).
		SetEmbedding(EncodeVector(p.Embedding)).
		SetClaimText(p.ClaimText).
		SetSupportStrength(p.SupportStrength).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("failed to append trajectory point: %w", err)
	}
	return nil
}

// Trajectory returns a session's points ordered by cycle number.
func (s *TrajectoryService) Trajectory(ctx context.Context, sessionID string) ([]trajectory.Point, error) {
	rows, err := s.client.TrajectoryPoint.Query().
		Where(trajectorypoint.SessionIDEQ(sessionID)).
		Order(ent.Asc(trajectorypoint.FieldCycleNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query trajectory: %w", err)
	}

	points := make([]trajectory.Point, 0, len(rows))
	for _, row := range rows {
		vec, err := DecodeVector(row.Embedding)
		if err != nil {
			return nil, fmt.Errorf("corrupt embedding at cycle %d: %w", row.CycleNumber, err)
		}
		points = append(points, trajectory.Point{
			SessionID:       row.SessionID,
			CycleNumber:     row.CycleNumber,
			Embedding:       vec,
			ClaimText:       row.ClaimText,
			SupportStrength: row.SupportStrength,
		})
	}
	return points, nil
}
