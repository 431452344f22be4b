package domain

// Role identifies a class of user in the nursery system.
type Role string

const (
	RoleCustomer             Role = "customer"
	RoleManager              Role = "manager"
	RoleWarehouseEmployee    Role = "warehouse_employee"
	RoleDeliveryCompany      Role = "delivery_company"
	RoleAgriculturalEngineer Role = "agricultural_engineer"
)

// roleAliases maps legacy role spellings to their canonical value. The user
// store contains both "agriculture_engineer" and "agricultural_engineer" for
// the same role; canonicalizing on read keeps the access checks a plain
// equality comparison.
var roleAliases = map[string]Role{
	"agriculture_engineer": RoleAgriculturalEngineer,
}

var knownRoles = map[Role]struct{}{
	RoleCustomer:             {},
	RoleManager:              {},
	RoleWarehouseEmployee:    {},
	RoleDeliveryCompany:      {},
	RoleAgriculturalEngineer: {},
}

// CanonicalRole maps a raw role string to its canonical Role value.
// Unknown strings pass through unchanged so that comparisons against the
// known set simply fail rather than erroring.
func CanonicalRole(raw string) Role {
	if canonical, ok := roleAliases[raw]; ok {
		return canonical
	}
	return Role(raw)
}

// ValidRole reports whether raw names a role known to the system, under
// canonicalization.
func ValidRole(raw string) bool {
	_, ok := knownRoles[CanonicalRole(raw)]
	return ok
}

// CanonicalRoles canonicalizes a slice of raw role strings.
func CanonicalRoles(raw []string) []Role {
	if len(raw) == 0 {
		return nil
	}
	roles := make([]Role, 0, len(raw))
	for _, r := range raw {
		roles = append(roles, CanonicalRole(r))
	}
	return roles
}
