// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dialectic-dev/dialectic/ent/agentcontribution"
	"github.com/dialectic-dev/dialectic/ent/blackboardrecord"
	"github.com/dialectic-dev/dialectic/ent/blackboardsnapshot"
	"github.com/dialectic-dev/dialectic/ent/cemeteryentry"
	"github.com/dialectic-dev/dialectic/ent/claimsummary"
	"github.com/dialectic-dev/dialectic/ent/claimtransition"
	"github.com/dialectic-dev/dialectic/ent/event"
	"github.com/dialectic-dev/dialectic/ent/frontieridea"
	"github.com/dialectic-dev/dialectic/ent/llmcost"
	"github.com/dialectic-dev/dialectic/ent/schema"
	"github.com/dialectic-dev/dialectic/ent/trajectorypoint"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentcontributionFields := schema.AgentContribution{}.Fields()
	_ = agentcontributionFields
	// agentcontributionDescConfidenceDelta is the schema descriptor for confidence_delta field.
	agentcontributionDescConfidenceDelta := agentcontributionFields[6].Descriptor()
	// agentcontribution.DefaultConfidenceDelta holds the default value on creation for the confidence_delta field.
	agentcontribution.DefaultConfidenceDelta = agentcontributionDescConfidenceDelta.Default.(float64)
	// agentcontributionDescAccepted is the schema descriptor for accepted field.
	agentcontributionDescAccepted := agentcontributionFields[7].Descriptor()
	// agentcontribution.DefaultAccepted holds the default value on creation for the accepted field.
	agentcontribution.DefaultAccepted = agentcontributionDescAccepted.Default.(bool)
	// agentcontributionDescCreatedAt is the schema descriptor for created_at field.
	agentcontributionDescCreatedAt := agentcontributionFields[8].Descriptor()
	// agentcontribution.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentcontribution.DefaultCreatedAt = agentcontributionDescCreatedAt.Default.(func() time.Time)
	blackboardrecordFields := schema.BlackboardRecord{}.Fields()
	_ = blackboardrecordFields
	// blackboardrecordDescSupportStrength is the schema descriptor for support_strength field.
	blackboardrecordDescSupportStrength := blackboardrecordFields[4].Descriptor()
	// blackboardrecord.DefaultSupportStrength holds the default value on creation for the support_strength field.
	blackboardrecord.DefaultSupportStrength = blackboardrecordDescSupportStrength.Default.(float64)
	// blackboardrecordDescCycleCount is the schema descriptor for cycle_count field.
	blackboardrecordDescCycleCount := blackboardrecordFields[7].Descriptor()
	// blackboardrecord.DefaultCycleCount holds the default value on creation for the cycle_count field.
	blackboardrecord.DefaultCycleCount = blackboardrecordDescCycleCount.Default.(int)
	// blackboardrecordDescCreatedAt is the schema descriptor for created_at field.
	blackboardrecordDescCreatedAt := blackboardrecordFields[13].Descriptor()
	// blackboardrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	blackboardrecord.DefaultCreatedAt = blackboardrecordDescCreatedAt.Default.(func() time.Time)
	// blackboardrecordDescUpdatedAt is the schema descriptor for updated_at field.
	blackboardrecordDescUpdatedAt := blackboardrecordFields[14].Descriptor()
	// blackboardrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	blackboardrecord.DefaultUpdatedAt = blackboardrecordDescUpdatedAt.Default.(func() time.Time)
	// blackboardrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	blackboardrecord.UpdateDefaultUpdatedAt = blackboardrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	blackboardsnapshotFields := schema.BlackboardSnapshot{}.Fields()
	_ = blackboardsnapshotFields
	// blackboardsnapshotDescCreatedAt is the schema descriptor for created_at field.
	blackboardsnapshotDescCreatedAt := blackboardsnapshotFields[4].Descriptor()
	// blackboardsnapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	blackboardsnapshot.DefaultCreatedAt = blackboardsnapshotDescCreatedAt.Default.(func() time.Time)
	cemeteryentryFields := schema.CemeteryEntry{}.Fields()
	_ = cemeteryentryFields
	// cemeteryentryDescCreatedAt is the schema descriptor for created_at field.
	cemeteryentryDescCreatedAt := cemeteryentryFields[5].Descriptor()
	// cemeteryentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	cemeteryentry.DefaultCreatedAt = cemeteryentryDescCreatedAt.Default.(func() time.Time)
	claimsummaryFields := schema.ClaimSummary{}.Fields()
	_ = claimsummaryFields
	// claimsummaryDescCycle is the schema descriptor for cycle field.
	claimsummaryDescCycle := claimsummaryFields[2].Descriptor()
	// claimsummary.DefaultCycle holds the default value on creation for the cycle field.
	claimsummary.DefaultCycle = claimsummaryDescCycle.Default.(int)
	// claimsummaryDescUpdatedAt is the schema descriptor for updated_at field.
	claimsummaryDescUpdatedAt := claimsummaryFields[3].Descriptor()
	// claimsummary.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	claimsummary.DefaultUpdatedAt = claimsummaryDescUpdatedAt.Default.(func() time.Time)
	// claimsummary.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	claimsummary.UpdateDefaultUpdatedAt = claimsummaryDescUpdatedAt.UpdateDefault.(func() time.Time)
	claimtransitionFields := schema.ClaimTransition{}.Fields()
	_ = claimtransitionFields
	// claimtransitionDescFromSupport is the schema descriptor for from_support field.
	claimtransitionDescFromSupport := claimtransitionFields[5].Descriptor()
	// claimtransition.DefaultFromSupport holds the default value on creation for the from_support field.
	claimtransition.DefaultFromSupport = claimtransitionDescFromSupport.Default.(float64)
	// claimtransitionDescToSupport is the schema descriptor for to_support field.
	claimtransitionDescToSupport := claimtransitionFields[6].Descriptor()
	// claimtransition.DefaultToSupport holds the default value on creation for the to_support field.
	claimtransition.DefaultToSupport = claimtransitionDescToSupport.Default.(float64)
	// claimtransitionDescCreatedAt is the schema descriptor for created_at field.
	claimtransitionDescCreatedAt := claimtransitionFields[7].Descriptor()
	// claimtransition.DefaultCreatedAt holds the default value on creation for the created_at field.
	claimtransition.DefaultCreatedAt = claimtransitionDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	frontierideaFields := schema.FrontierIdea{}.Fields()
	_ = frontierideaFields
	// frontierideaDescSponsorCount is the schema descriptor for sponsor_count field.
	frontierideaDescSponsorCount := frontierideaFields[3].Descriptor()
	// frontieridea.DefaultSponsorCount holds the default value on creation for the sponsor_count field.
	frontieridea.DefaultSponsorCount = frontierideaDescSponsorCount.Default.(int)
	// frontierideaDescCyclesAlive is the schema descriptor for cycles_alive field.
	frontierideaDescCyclesAlive := frontierideaFields[4].Descriptor()
	// frontieridea.DefaultCyclesAlive holds the default value on creation for the cycles_alive field.
	frontieridea.DefaultCyclesAlive = frontierideaDescCyclesAlive.Default.(int)
	// frontierideaDescActivated is the schema descriptor for activated field.
	frontierideaDescActivated := frontierideaFields[5].Descriptor()
	// frontieridea.DefaultActivated holds the default value on creation for the activated field.
	frontieridea.DefaultActivated = frontierideaDescActivated.Default.(bool)
	// frontierideaDescCreatedAt is the schema descriptor for created_at field.
	frontierideaDescCreatedAt := frontierideaFields[6].Descriptor()
	// frontieridea.DefaultCreatedAt holds the default value on creation for the created_at field.
	frontieridea.DefaultCreatedAt = frontierideaDescCreatedAt.Default.(func() time.Time)
	// frontierideaDescUpdatedAt is the schema descriptor for updated_at field.
	frontierideaDescUpdatedAt := frontierideaFields[7].Descriptor()
	// frontieridea.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	frontieridea.DefaultUpdatedAt = frontierideaDescUpdatedAt.Default.(func() time.Time)
	// frontieridea.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	frontieridea.UpdateDefaultUpdatedAt = frontierideaDescUpdatedAt.UpdateDefault.(func() time.Time)
	llmcostFields := schema.LLMCost{}.Fields()
	_ = llmcostFields
	// llmcostDescCreatedAt is the schema descriptor for created_at field.
	llmcostDescCreatedAt := llmcostFields[5].Descriptor()
	// llmcost.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmcost.DefaultCreatedAt = llmcostDescCreatedAt.Default.(func() time.Time)
	trajectorypointFields := schema.TrajectoryPoint{}.Fields()
	_ = trajectorypointFields
	// trajectorypointDescCreatedAt is the schema descriptor for created_at field.
	trajectorypointDescCreatedAt := trajectorypointFields[5].Descriptor()
	// trajectorypoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	trajectorypoint.DefaultCreatedAt = trajectorypointDescCreatedAt.Default.(func() time.Time)
}
