package summarize

import (
	"context"
	"fmt"
	"strings"

	"github.com/dialectic-dev/dialectic/pkg/blackboard"
	"github.com/dialectic-dev/dialectic/pkg/events"
	"github.com/dialectic-dev/dialectic/pkg/runner"
)

// SummaryStore persists the rolling summary. Implemented by
// services.SummaryService.
type SummaryStore interface {
	UpsertSummary(ctx context.Context, sessionID, summary string, cycle int) error
}

// TransitionStore persists classified transitions. Implemented by
// services.TransitionService.
type TransitionStore interface {
	RecordTransition(ctx context.Context, sessionID string, cycle int, transition, fromClaim, toClaim string, fromSupport, toSupport float64) error
}

// Summarizer builds an extractive summary of the session state after each
// cycle and stores it. Implements runner.Summarizer.
type Summarizer struct {
	store     SummaryStore
	publisher *events.Publisher // may be nil
}

// NewSummarizer creates a summarizer. publisher may be nil.
func NewSummarizer(store SummaryStore, publisher *events.Publisher) *Summarizer {
	return &Summarizer{store: store, publisher: publisher}
}

// Summarize renders and persists the session summary, then announces it.
func (s *Summarizer) Summarize(ctx context.Context, snap *blackboard.Snapshot) error {
	summary := Render(snap)
	if err := s.store.UpsertSummary(ctx, snap.SessionID, summary, snap.CycleCount); err != nil {
		return err
	}
	if s.publisher != nil {
		s.publisher.PublishSummaryUpdated(ctx, snap.SessionID, summary, snap.CycleCount)
	}
	return nil
}

// Render produces the summary text from a snapshot.
func Render(snap *blackboard.Snapshot) string {
	var b strings.Builder
	if snap.HasClaim() {
		fmt.Fprintf(&b, "Cycle %d: claim %q at support %.2f.",
			snap.CycleCount, events.TruncateClaim(snap.CurrentClaim), snap.SupportStrength)
	} else {
		fmt.Fprintf(&b, "Cycle %d: no live claim; awaiting resurrection.", snap.CycleCount)
	}
	if snap.ActiveObjection != "" {
		fmt.Fprintf(&b, " Standing objection: %s.", snap.ActiveObjection)
	}
	if snap.AnalogyOfRecord != "" {
		fmt.Fprintf(&b, " Analogy of record: %s.", snap.AnalogyOfRecord)
	}
	if n := len(snap.Cemetery); n > 0 {
		fmt.Fprintf(&b, " %d claim(s) in the cemetery.", n)
	}
	if n := len(snap.GraduatedClaims); n > 0 {
		fmt.Fprintf(&b, " %d claim(s) graduated.", n)
	}
	if n := len(snap.FrontierPool); n > 0 {
		fmt.Fprintf(&b, " %d frontier idea(s) pending.", n)
	}
	return b.String()
}

// ChangeDetector classifies claim movements between cycle boundaries and
// records them. Implements runner.ChangeDetector.
type ChangeDetector struct {
	store     TransitionStore
	publisher *events.Publisher // may be nil
}

// NewChangeDetector creates a change detector. publisher may be nil.
func NewChangeDetector(store TransitionStore, publisher *events.Publisher) *ChangeDetector {
	return &ChangeDetector{store: store, publisher: publisher}
}

// Detect classifies, persists and announces one claim change.
func (d *ChangeDetector) Detect(ctx context.Context, change runner.ClaimChange) error {
	transition := Classify(change.FromClaim, change.ToClaim, change.ToSupport)
	if err := d.store.RecordTransition(ctx, change.SessionID, change.Cycle, transition,
		change.FromClaim, change.ToClaim, change.FromSupport, change.ToSupport); err != nil {
		return err
	}
	if d.publisher != nil {
		d.publisher.PublishClaimChanged(ctx, change.SessionID, transition,
			change.FromClaim, change.ToClaim, change.Cycle)
	}
	return nil
}
