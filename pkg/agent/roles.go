// Package agent defines the closed set of reasoning-agent roles, the
// proposal payload union they produce, and the interface the dispatcher
// uses to run them. Agent implementations (prompting, LLM calls) live
// outside the core; the core only depends on the shapes defined here.
package agent

import "fmt"

// Role identifies one of the fixed reasoning-agent variants.
type Role string

// The closed role set. Adding a role requires a matching Output type and
// arbiter handling.
const (
	RoleExplorer        Role = "explorer"
	RoleCritic          Role = "critic"
	RoleConnector       Role = "connector"
	RoleSteelman        Role = "steelman"
	RoleOperationalizer Role = "operationalizer"
	RoleQuantifier      Role = "quantifier"
	RoleReducer         Role = "reducer"
	RoleBoundaryHunter  Role = "boundary_hunter"
	RoleTranslator      Role = "translator"
	RoleHistorian       Role = "historian"
	RoleGraveKeeper     Role = "grave_keeper"
	RoleCartographer    Role = "cartographer"
	RolePerturber       Role = "perturber"
)

// AllRoles lists every known role in a stable order.
var AllRoles = []Role{
	RoleExplorer,
	RoleCritic,
	RoleConnector,
	RoleSteelman,
	RoleOperationalizer,
	RoleQuantifier,
	RoleReducer,
	RoleBoundaryHunter,
	RoleTranslator,
	RoleHistorian,
	RoleGraveKeeper,
	RoleCartographer,
	RolePerturber,
}

// IsValid reports whether r is a member of the closed role set.
func (r Role) IsValid() bool {
	switch r {
	case RoleExplorer, RoleCritic, RoleConnector, RoleSteelman,
		RoleOperationalizer, RoleQuantifier, RoleReducer, RoleBoundaryHunter,
		RoleTranslator, RoleHistorian, RoleGraveKeeper, RoleCartographer,
		RolePerturber:
		return true
	}
	return false
}

// ParseRole converts a string into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("unknown agent role: %q", s)
	}
	return r, nil
}

func (r Role) String() string { return string(r) }
