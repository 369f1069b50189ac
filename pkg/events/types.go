// Package events provides the session-scoped event fan-out: an in-process
// topic bus, typed payloads, a publisher facade that persists durable
// events before broadcasting, and a WebSocket connection manager for UI
// delivery.
//
// Events are best-effort and in-order per publisher. A topic with no
// subscriber drops its events; a slow subscriber drops the oldest
// undelivered ones. No event payload carries a pointer into mutable state.
package events

// Event type identifiers.
const (
	EventTypeSessionStarted   = "session_started"
	EventTypeSessionPaused    = "session_paused"
	EventTypeSessionResumed   = "session_resumed"
	EventTypeSessionStopped   = "session_stopped"
	EventTypeSessionCompleted = "session_completed"

	EventTypeCycleStarted      = "cycle_started"
	EventTypeCycleComplete     = "cycle_complete"
	EventTypeCycleCountChanged = "cycle_count_changed"

	EventTypeClaimUpdated   = "claim_updated"
	EventTypeSupportUpdated = "support_updated"
	EventTypeClaimDied      = "claim_died"
	EventTypeClaimGraduated = "claim_graduated"
	EventTypeClaimChanged   = "claim_changed"
	EventTypeSummaryUpdated = "summary_updated"
	EventTypeCostRecorded   = "cost_recorded"
)

// GlobalSessionsTopic aggregates lifecycle events across all sessions.
const GlobalSessionsTopic = "sessions"

// SessionTopic returns the topic for one session's events.
func SessionTopic(sessionID string) string { return "session:" + sessionID }

// BlackboardTopic returns the topic for blackboard-scoped mutation events.
func BlackboardTopic(blackboardID string) string { return "blackboard:" + blackboardID }

// ClientMessage is the JSON structure for client → server WebSocket
// messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Topic       string `json:"topic,omitempty"`         // e.g. "session:session_000001"
	LastEventID *int64 `json:"last_event_id,omitempty"` // for catchup
}
