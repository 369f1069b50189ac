package agent

// Output is the closed tagged union of role-specific proposal payloads.
// The arbiter dispatches on the concrete type; OutputRole is the tag.
type Output interface {
	OutputRole() Role
	// IsValid reports whether the producing agent judged its own output
	// usable. Agents set false instead of returning an error when the
	// model produced something structurally fine but substantively weak
	// (e.g. a vague analogy).
	IsValid() bool
}

// Validity is embedded by every output payload to carry the valid marker.
type Validity struct {
	Valid bool `json:"valid"`
}

func (v Validity) IsValid() bool { return v.Valid }

// ExplorerOutput proposes a replacement claim. NewClaim must be a
// non-hedged declarative sentence; transitional prefixes are stripped by
// the arbiter before acceptance.
type ExplorerOutput struct {
	Validity
	NewClaim string `json:"new_claim"`
}

func (ExplorerOutput) OutputRole() Role { return RoleExplorer }

// CriticOutput raises an objection against a premise of the current claim.
type CriticOutput struct {
	Validity
	Objection     string `json:"objection"`
	TargetPremise string `json:"target_premise"`
}

func (CriticOutput) OutputRole() Role { return RoleCritic }

// ConnectorOutput contributes an analogy from another domain.
type ConnectorOutput struct {
	Validity
	Analogy            string `json:"analogy"`
	SourceDomain       string `json:"source_domain"`
	MappingExplanation string `json:"mapping_explanation"`
}

func (ConnectorOutput) OutputRole() Role { return RoleConnector }

// SteelmanOutput strengthens the current claim's weakest premise.
type SteelmanOutput struct {
	Validity
	Reinforcement string `json:"reinforcement"`
}

func (SteelmanOutput) OutputRole() Role { return RoleSteelman }

// OperationalizerOutput proposes a concrete test for the claim.
type OperationalizerOutput struct {
	Validity
	Procedure string `json:"procedure"`
}

func (OperationalizerOutput) OutputRole() Role { return RoleOperationalizer }

// QuantifierOutput attaches magnitudes or bounds to the claim.
type QuantifierOutput struct {
	Validity
	Quantification string `json:"quantification"`
}

func (QuantifierOutput) OutputRole() Role { return RoleQuantifier }

// ReducerOutput compresses the claim to its essential content.
type ReducerOutput struct {
	Validity
	Reduction string `json:"reduction"`
}

func (ReducerOutput) OutputRole() Role { return RoleReducer }

// BoundaryHunterOutput names a regime where the claim stops holding.
type BoundaryHunterOutput struct {
	Validity
	Boundary string `json:"boundary"`
}

func (BoundaryHunterOutput) OutputRole() Role { return RoleBoundaryHunter }

// TranslatorOutput restates the claim inside another framework.
// Framework feeds the blackboard's dedup set of frameworks already used.
type TranslatorOutput struct {
	Validity
	Framework   string `json:"framework"`
	Translation string `json:"translation"`
}

func (TranslatorOutput) OutputRole() Role { return RoleTranslator }

// HistorianOutput relates the claim to prior claims in the trajectory.
type HistorianOutput struct {
	Validity
	Perspective string `json:"perspective"`
}

func (HistorianOutput) OutputRole() Role { return RoleHistorian }

// GraveKeeperOutput revisits cemetery entries for salvageable material.
type GraveKeeperOutput struct {
	Validity
	Salvage string `json:"salvage"`
}

func (GraveKeeperOutput) OutputRole() Role { return RoleGraveKeeper }

// CartographerOutput maps the explored region when the trajectory stalls.
type CartographerOutput struct {
	Validity
	MapSummary string `json:"map_summary"`
	FrontierID string `json:"frontier_id,omitempty"`
	Frontier   string `json:"frontier,omitempty"`
}

func (CartographerOutput) OutputRole() Role { return RoleCartographer }

// PerturberOutput injects a deliberately destabilizing idea.
type PerturberOutput struct {
	Validity
	Perturbation string `json:"perturbation"`
	FrontierID   string `json:"frontier_id,omitempty"`
	Frontier     string `json:"frontier,omitempty"`
}

func (PerturberOutput) OutputRole() Role { return RolePerturber }

/// Valid is shorthand for the embedded marker in payload literals:
// agent.ExplorerOutput{Validity: agent.Valid(), NewClaim: ...}.
func Valid() Validity { return Validity{Valid: true} }
