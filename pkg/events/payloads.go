package events

// claimPreviewLimit truncates claim text carried in cycle_complete events.
const claimPreviewLimit = 200

// BasePayload carries the fields common to every event.
type BasePayload struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// SessionLifecyclePayload is shared by session_started, session_paused,
// session_resumed, session_stopped and session_completed.
type SessionLifecyclePayload struct {
	BasePayload
	Status       string `json:"status"`
	BlackboardID string `json:"blackboard_id,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

// CycleStartedPayload announces a cycle entering its pipeline.
type CycleStartedPayload struct {
	BasePayload
	Cycle        int    `json:"cycle"`
	BlackboardID string `json:"blackboard_id"`
}

// CycleCompletePayload closes a cycle. CurrentClaim is truncated to 200
// characters; the full text lives in the blackboard snapshot row.
type CycleCompletePayload struct {
	BasePayload
	Cycle        int     `json:"cycle"`
	DurationMS   int64   `json:"duration_ms"`
	Support      float64 `json:"support"`
	CurrentClaim string  `json:"current_claim"`
}

// CycleCountChangedPayload is the blackboard-scoped counter notification.
type CycleCountChangedPayload struct {
	BasePayload
	Cycle int `json:"cycle"`
}

// ClaimUpdatedPayload reports a claim replacement or installation.
type ClaimUpdatedPayload struct {
	BasePayload
	Claim string `json:"claim"`
	Cycle int    `json:"cycle"`
}

// SupportUpdatedPayload reports a support strength movement.
type SupportUpdatedPayload struct {
	BasePayload
	Support float64 `json:"support"`
	Cycle   int     `json:"cycle"`
}

// ClaimDiedPayload reports a claim crossing the death threshold.
type ClaimDiedPayload struct {
	BasePayload
	Claim        string  `json:"claim"`
	Cause        string  `json:"cause"`
	FinalSupport float64 `json:"final_support"`
	Cycle        int     `json:"cycle"`
}

// ClaimGraduatedPayload reports a claim crossing the graduation threshold.
type ClaimGraduatedPayload struct {
	BasePayload
	Claim        string  `json:"claim"`
	FinalSupport float64 `json:"final_support"`
	Cycle        int     `json:"cycle"`
}

// ClaimChangedPayload carries a detected claim transition.
type ClaimChangedPayload struct {
	BasePayload
	Transition string `json:"transition"` // refinement, pivot, death, resurrection, graduation
	FromClaim  string `json:"from_claim,omitempty"`
	ToClaim    string `json:"to_claim,omitempty"`
	Cycle      int    `json:"cycle"`
}

// SummaryUpdatedPayload announces a refreshed claim summary.
type SummaryUpdatedPayload struct {
	BasePayload
	Summary string `json:"summary"`
	Cycle   int    `json:"cycle"`
}

// CostRecordedPayload reports an accrued language-model cost.
type CostRecordedPayload struct {
	BasePayload
	Role    string  `json:"role"`
	Model   string  `json:"model"`
	Cycle   int     `json:"cycle"`
	CostUSD float64 `json:"cost_usd"`
}

// TruncateClaim shortens claim text for event payloads.
func TruncateClaim(claim string) string {
	if len(claim) <= claimPreviewLimit {
		return claim
	}
	return claim[:claimPreviewLimit]
}
