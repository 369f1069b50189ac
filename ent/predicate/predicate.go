// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentContribution is the predicate function for agentcontribution builders.
type AgentContribution func(*sql.Selector)

// BlackboardRecord is the predicate function for blackboardrecord builders.
type BlackboardRecord func(*sql.Selector)

// BlackboardSnapshot is the predicate function for blackboardsnapshot builders.
type BlackboardSnapshot func(*sql.Selector)

// CemeteryEntry is the predicate function for cemeteryentry builders.
type CemeteryEntry func(*sql.Selector)

// ClaimSummary is the predicate function for claimsummary builders.
type ClaimSummary func(*sql.Selector)

// ClaimTransition is the predicate function for claimtransition builders.
type ClaimTransition func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// FrontierIdea is the predicate function for frontieridea builders.
type FrontierIdea func(*sql.Selector)

// LLMCost is the predicate function for llmcost builders.
type LLMCost func(*sql.Selector)

// TrajectoryPoint is the predicate function for trajectorypoint builders.
type TrajectoryPoint func(*sql.Selector)
