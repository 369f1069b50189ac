// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentContributionsColumns holds the columns for the "agent_contributions" table.
	AgentContributionsColumns = []*schema.Column{
		{Name: "contribution_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "cycle", Type: field.TypeInt},
		{Name: "role", Type: field.TypeString},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence_delta", Type: field.TypeFloat64, Default: 0},
		{Name: "accepted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AgentContributionsTable holds the schema information for the "agent_contributions" table.
	AgentContributionsTable = &schema.Table{
		Name:       "agent_contributions",
		Columns:    AgentContributionsColumns,
		PrimaryKey: []*schema.Column{AgentContributionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentcontribution_session_id_cycle",
				Unique:  false,
				Columns: []*schema.Column{AgentContributionsColumns[1], AgentContributionsColumns[2]},
			},
			{
				Name:    "agentcontribution_session_id_accepted",
				Unique:  false,
				Columns: []*schema.Column{AgentContributionsColumns[1], AgentContributionsColumns[7]},
			},
			{
				Name:    "agentcontribution_role",
				Unique:  false,
				Columns: []*schema.Column{AgentContributionsColumns[3]},
			},
		},
	}
	// BlackboardRecordsColumns holds the columns for the "blackboard_records" table.
	BlackboardRecordsColumns = []*schema.Column{
		{Name: "blackboard_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "seed_claim", Type: field.TypeString, Size: 2147483647},
		{Name: "current_claim", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "support_strength", Type: field.TypeFloat64, Default: 0.5},
		{Name: "active_objection", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "analogy_of_record", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cycle_count", Type: field.TypeInt, Default: 0},
		{Name: "frontier_pool", Type: field.TypeJSON, Nullable: true},
		{Name: "cemetery", Type: field.TypeJSON, Nullable: true},
		{Name: "graduated_claims", Type: field.TypeJSON, Nullable: true},
		{Name: "translator_frameworks", Type: field.TypeJSON, Nullable: true},
		{Name: "cost_limit_usd", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BlackboardRecordsTable holds the schema information for the "blackboard_records" table.
	BlackboardRecordsTable = &schema.Table{
		Name:       "blackboard_records",
		Columns:    BlackboardRecordsColumns,
		PrimaryKey: []*schema.Column{BlackboardRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "blackboardrecord_session_id",
				Unique:  false,
				Columns: []*schema.Column{BlackboardRecordsColumns[1]},
			},
			{
				Name:    "blackboardrecord_updated_at",
				Unique:  false,
				Columns: []*schema.Column{BlackboardRecordsColumns[14]},
			},
		},
	}
	// BlackboardSnapshotsColumns holds the columns for the "blackboard_snapshots" table.
	BlackboardSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "blackboard_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "cycle", Type: field.TypeInt},
		{Name: "state", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BlackboardSnapshotsTable holds the schema information for the "blackboard_snapshots" table.
	BlackboardSnapshotsTable = &schema.Table{
		Name:       "blackboard_snapshots",
		Columns:    BlackboardSnapshotsColumns,
		PrimaryKey: []*schema.Column{BlackboardSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "blackboardsnapshot_session_id_cycle",
				Unique:  false,
				Columns: []*schema.Column{BlackboardSnapshotsColumns[2], BlackboardSnapshotsColumns[3]},
			},
			{
				Name:    "blackboardsnapshot_blackboard_id",
				Unique:  false,
				Columns: []*schema.Column{BlackboardSnapshotsColumns[1]},
			},
		},
	}
	// CemeteryEntriesColumns holds the columns for the "cemetery_entries" table.
	CemeteryEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "claim", Type: field.TypeString, Size: 2147483647},
		{Name: "cause_of_death", Type: field.TypeString},
		{Name: "final_support", Type: field.TypeFloat64},
		{Name: "cycle_killed", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CemeteryEntriesTable holds the schema information for the "cemetery_entries" table.
	CemeteryEntriesTable = &schema.Table{
		Name:       "cemetery_entries",
		Columns:    CemeteryEntriesColumns,
		PrimaryKey: []*schema.Column{CemeteryEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cemeteryentry_session_id_cycle_killed",
				Unique:  false,
				Columns: []*schema.Column{CemeteryEntriesColumns[1], CemeteryEntriesColumns[5]},
			},
		},
	}
	// ClaimSummariesColumns holds the columns for the "claim_summaries" table.
	ClaimSummariesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "cycle", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ClaimSummariesTable holds the schema information for the "claim_summaries" table.
	ClaimSummariesTable = &schema.Table{
		Name:       "claim_summaries",
		Columns:    ClaimSummariesColumns,
		PrimaryKey: []*schema.Column{ClaimSummariesColumns[0]},
	}
	// ClaimTransitionsColumns holds the columns for the "claim_transitions" table.
	ClaimTransitionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "cycle", Type: field.TypeInt},
		{Name: "transition", Type: field.TypeEnum, Enums: []string{"refinement", "pivot", "death", "resurrection", "graduation"}},
		{Name: "from_claim", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "to_claim", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "from_support", Type: field.TypeFloat64, Default: 0},
		{Name: "to_support", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ClaimTransitionsTable holds the schema information for the "claim_transitions" table.
	ClaimTransitionsTable = &schema.Table{
		Name:       "claim_transitions",
		Columns:    ClaimTransitionsColumns,
		PrimaryKey: []*schema.Column{ClaimTransitionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "claimtransition_session_id_cycle",
				Unique:  false,
				Columns: []*schema.Column{ClaimTransitionsColumns[1], ClaimTransitionsColumns[2]},
			},
			{
				Name:    "claimtransition_transition",
				Unique:  false,
				Columns: []*schema.Column{ClaimTransitionsColumns[3]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "payload", Type: field.TypeBytes},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_topic",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
			{
				Name:    "event_session_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// FrontierIdeasColumns holds the columns for the "frontier_ideas" table.
	FrontierIdeasColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "idea_id", Type: field.TypeString},
		{Name: "idea_text", Type: field.TypeString, Size: 2147483647},
		{Name: "sponsor_count", Type: field.TypeInt, Default: 0},
		{Name: "cycles_alive", Type: field.TypeInt, Default: 0},
		{Name: "activated", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FrontierIdeasTable holds the schema information for the "frontier_ideas" table.
	FrontierIdeasTable = &schema.Table{
		Name:       "frontier_ideas",
		Columns:    FrontierIdeasColumns,
		PrimaryKey: []*schema.Column{FrontierIdeasColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "frontieridea_session_id_idea_id",
				Unique:  true,
				Columns: []*schema.Column{FrontierIdeasColumns[1], FrontierIdeasColumns[2]},
			},
			{
				Name:    "frontieridea_session_id_activated",
				Unique:  false,
				Columns: []*schema.Column{FrontierIdeasColumns[1], FrontierIdeasColumns[6]},
			},
		},
	}
	// LlmCostsColumns holds the columns for the "llm_costs" table.
	LlmCostsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "cycle", Type: field.TypeInt},
		{Name: "role", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "cost_usd", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LlmCostsTable holds the schema information for the "llm_costs" table.
	LlmCostsTable = &schema.Table{
		Name:       "llm_costs",
		Columns:    LlmCostsColumns,
		PrimaryKey: []*schema.Column{LlmCostsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmcost_session_id",
				Unique:  false,
				Columns: []*schema.Column{LlmCostsColumns[1]},
			},
			{
				Name:    "llmcost_session_id_cycle",
				Unique:  false,
				Columns: []*schema.Column{LlmCostsColumns[1], LlmCostsColumns[2]},
			},
		},
	}
	// TrajectoryPointsColumns holds the columns for the "trajectory_points" table.
	TrajectoryPointsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "cycle_number", Type: field.TypeInt},
		{Name: "embedding", Type: field.TypeBytes},
		{Name: "claim_text", Type: field.TypeString, Size: 2147483647},
		{Name: "support_strength", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TrajectoryPointsTable holds the schema information for the "trajectory_points" table.
	TrajectoryPointsTable = &schema.Table{
		Name:       "trajectory_points",
		Columns:    TrajectoryPointsColumns,
		PrimaryKey: []*schema.Column{TrajectoryPointsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "trajectorypoint_session_id_cycle_number",
				Unique:  true,
				Columns: []*schema.Column{TrajectoryPointsColumns[1], TrajectoryPointsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentContributionsTable,
		BlackboardRecordsTable,
		BlackboardSnapshotsTable,
		CemeteryEntriesTable,
		ClaimSummariesTable,
		ClaimTransitionsTable,
		EventsTable,
		FrontierIdeasTable,
		LlmCostsTable,
		TrajectoryPointsTable,
	}
)

func init() {
}
