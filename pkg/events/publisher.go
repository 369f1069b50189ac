package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

// StoredEvent is a persisted event row used for catchup.
type StoredEvent struct {
	ID      int64
	Payload []byte
}

// EventStore persists durable events and serves catchup queries.
// Implemented by services.EventService.
type EventStore interface {
	AppendEvent(ctx context.Context, sessionID, topic string, payload []byte) (int64, error)
	CatchupEvents(ctx context.Context, topic string, sinceID int64, limit int) ([]StoredEvent, error)
}

// Publisher is the typed facade over the bus. Durable events (lifecycle,
// cycle completion, deaths, graduations, transitions, summaries, costs)
// are appended to the events table before broadcast so late subscribers
// can catch up; high-frequency mutation events are broadcast only.
// Persistence failures are logged and never block the broadcast.
type Publisher struct {
	bus   *Bus
	store EventStore // may be nil (persistence disabled)
}

// NewPublisher creates a publisher over the bus. store may be nil.
func NewPublisher(bus *Bus, store EventStore) *Publisher {
	return &Publisher{bus: bus, store: store}
}

func (p *Publisher) base(eventType, sessionID string) BasePayload {
	return BasePayload{
		Type:      eventType,
		SessionID: sessionID,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}
}

// persistAndBroadcast appends the event row, then broadcasts the payload
// (with db_event_id injected) to every topic.
func (p *Publisher) persistAndBroadcast(ctx context.Context, sessionID string, payload any, topics ...string) {
	raw, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal event payload", "session_id", sessionID, "error", err)
		return
	}
	if p.store != nil {
		if id, err := p.store.AppendEvent(ctx, sessionID, topics[0], raw); err != nil {
			slog.Warn("Failed to persist event", "session_id", sessionID, "error", err)
		} else if enriched, err := injectEventID(raw, id); err == nil {
			raw = enriched
		}
	}
	for _, topic := range topics {
		p.bus.Publish(topic, raw)
	}
}

// broadcastOnly publishes without persistence.
func (p *Publisher) broadcastOnly(sessionID string, payload any, topics ...string) {
	raw, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal event payload", "session_id", sessionID, "error", err)
		return
	}
	for _, topic := range topics {
		p.bus.Publish(topic, raw)
	}
}

// injectEventID adds db_event_id so clients can track their catchup
// position.
func injectEventID(raw []byte, id int64) ([]byte, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	m["db_event_id"] = id
	return json.Marshal(m)
}

// --- Session lifecycle ---

// PublishSessionLifecycle emits one of the session_* lifecycle events to
// the session topic and the global sessions topic.
func (p *Publisher) PublishSessionLifecycle(ctx context.Context, eventType, sessionID, blackboardID, status, reason string) {
	payload := SessionLifecyclePayload{
		BasePayload:  p.base(eventType, sessionID),
		Status:       status,
		BlackboardID: blackboardID,
		Reason:       reason,
	}
	p.persistAndBroadcast(ctx, sessionID, payload, SessionTopic(sessionID), GlobalSessionsTopic)
}

// --- Cycle events ---

// PublishCycleStarted emits a transient cycle_started event.
func (p *Publisher) PublishCycleStarted(sessionID, blackboardID string, cycle int) {
	payload := CycleStartedPayload{
		BasePayload:  p.base(EventTypeCycleStarted, sessionID),
		Cycle:        cycle,
		BlackboardID: blackboardID,
	}
	p.broadcastOnly(sessionID, payload, SessionTopic(sessionID))
}

// PublishCycleComplete emits a durable cycle_complete event.
func (p *Publisher) PublishCycleComplete(ctx context.Context, sessionID string, cycle int, duration time.Duration, support float64, claim string) {
	payload := CycleCompletePayload{
		BasePayload:  p.base(EventTypeCycleComplete, sessionID),
		Cycle:        cycle,
		DurationMS:   duration.Milliseconds(),
		Support:      support,
		CurrentClaim: TruncateClaim(claim),
	}
	p.persistAndBroadcast(ctx, sessionID, payload, SessionTopic(sessionID), GlobalSessionsTopic)
}

// --- Blackboard mutation events (transient, high frequency) ---

// PublishCycleCountChanged emits the blackboard counter notification.
func (p *Publisher) PublishCycleCountChanged(sessionID, blackboardID string, cycle int) {
	payload := CycleCountChangedPayload{
		BasePayload: p.base(EventTypeCycleCountChanged, sessionID),
		Cycle:       cycle,
	}
	p.broadcastOnly(sessionID, payload, BlackboardTopic(blackboardID))
}

// PublishClaimUpdated emits a claim replacement notification.
func (p *Publisher) PublishClaimUpdated(sessionID, blackboardID, claim string, cycle int) {
	payload := ClaimUpdatedPayload{
		BasePayload: p.base(EventTypeClaimUpdated, sessionID),
		Claim:       TruncateClaim(claim),
		Cycle:       cycle,
	}
	p.broadcastOnly(sessionID, payload, SessionTopic(sessionID), BlackboardTopic(blackboardID))
}

// PublishSupportUpdated emits a support movement notification.
func (p *Publisher) PublishSupportUpdated(sessionID, blackboardID string, support float64, cycle int) {
	payload := SupportUpdatedPayload{
		BasePayload: p.base(EventTypeSupportUpdated, sessionID),
		Support:     support,
		Cycle:       cycle,
	}
	p.broadcastOnly(sessionID, payload, SessionTopic(sessionID), BlackboardTopic(blackboardID))
}

// --- Durable claim events ---

// PublishClaimDied emits a durable claim_died event.
func (p *Publisher) PublishClaimDied(ctx context.Context, sessionID, blackboardID, claim, cause string, finalSupport float64, cycle int) {
	payload := ClaimDiedPayload{
		BasePayload:  p.base(EventTypeClaimDied, sessionID),
		Claim:        TruncateClaim(claim),
		Cause:        cause,
		FinalSupport: finalSupport,
		Cycle:        cycle,
	}
	p.persistAndBroadcast(ctx, sessionID, payload, SessionTopic(sessionID), BlackboardTopic(blackboardID))
}

// PublishClaimGraduated emits a durable claim_graduated event.
func (p *Publisher) PublishClaimGraduated(ctx context.Context, sessionID, blackboardID, claim string, finalSupport float64, cycle int) {
	payload := ClaimGraduatedPayload{
		BasePayload:  p.base(EventTypeClaimGraduated, sessionID),
		Claim:        TruncateClaim(claim),
		FinalSupport: finalSupport,
		Cycle:        cycle,
	}
	p.persistAndBroadcast(ctx, sessionID, payload, SessionTopic(sessionID), BlackboardTopic(blackboardID))
}

// PublishClaimChanged emits a durable claim transition event.
func (p *Publisher) PublishClaimChanged(ctx context.Context, sessionID, transition, fromClaim, toClaim string, cycle int) {
	payload := ClaimChangedPayload{
		BasePayload: p.base(EventTypeClaimChanged, sessionID),
		Transition:  transition,
		FromClaim:   TruncateClaim(fromClaim),
		ToClaim:     TruncateClaim(toClaim),
		Cycle:       cycle,
	}
	p.persistAndBroadcast(ctx, sessionID, payload, SessionTopic(sessionID))
}

// PublishSummaryUpdated emits a durable summary_updated event.
func (p *Publisher) PublishSummaryUpdated(ctx context.Context, sessionID, summary string, cycle int) {
	payload := SummaryUpdatedPayload{
		BasePayload: p.base(EventTypeSummaryUpdated, sessionID),
		Summary:     summary,
		Cycle:       cycle,
	}
	p.persistAndBroadcast(ctx, sessionID, payload, SessionTopic(sessionID))
}

// PublishCostRecorded emits a durable cost accrual event.
func (p *Publisher) PublishCostRecorded(ctx context.Context, sessionID, role, model string, cycle int, costUSD float64) {
	payload := CostRecordedPayload{
		BasePayload: p.base(EventTypeCostRecorded, sessionID),
		Role:        role,
		Model:       model,
		Cycle:       cycle,
		CostUSD:     costUSD,
	}
	p.persistAndBroadcast(ctx, sessionID, payload, SessionTopic(sessionID))
}
