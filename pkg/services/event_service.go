package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dialectic-dev/dialectic/ent"
	"github.com/dialectic-dev/dialectic/ent/event"
	"github.com/dialectic-dev/dialectic/pkg/events"
)

// EventService persists durable events and serves WebSocket catchup
// queries. The row id is the catchup cursor.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// AppendEvent writes one event row and returns its id.
func (s *EventService) AppendEvent(ctx context.Context, sessionID, topic string, payload []byte) (int64, error) {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	evt, err := s.client.Event.Create().
		SetSessionID(sessionID).
		SetTopic(topic).
		SetPayload(payload).
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to append event: %w", err)
	}
	return int64(evt.ID), nil
}

// CatchupEvents returns up to limit events on the topic after sinceID, in
// id order.
func (s *EventService) CatchupEvents(ctx context.Context, topic string, sinceID int64, limit int) ([]events.StoredEvent, error) {
	rows, err := s.client.Event.Query().
		Where(event.TopicEQ(topic), event.IDGT(int(sinceID))).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query catchup events: %w", err)
	}

	stored := make([]events.StoredEvent, 0, len(rows))
	for _, row := range rows {
		stored = append(stored, events.StoredEvent{
			ID:      int64(row.ID),
			Payload: row.Payload,
		})
	}
	return stored, nil
}

// CleanupExpiredEvents removes durable events older than the TTL,
// regardless of session. Catchup replays only need the recent tail.
func (s *EventService) CleanupExpiredEvents(ctx context.Context, ttl time.Duration) (int, error) {
	writeCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(time.Now().Add(-ttl))).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup expired events: %w", err)
	}
	return count, nil
}

// CleanupSessionEvents removes all events for a session.
func (s *EventService) CleanupSessionEvents(ctx context.Context, sessionID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.SessionIDEQ(sessionID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup session events: %w", err)
	}
	return count, nil
}
