package domain

import "testing"

func TestCanonicalRole(t *testing.T) {
	cases := []struct {
		raw  string
		want Role
	}{
		{"customer", RoleCustomer},
		{"agricultural_engineer", RoleAgriculturalEngineer},
		{"agriculture_engineer", RoleAgriculturalEngineer},
		{"janitor", Role("janitor")},
	}
	for _, tc := range cases {
		if got := CanonicalRole(tc.raw); got != tc.want {
			t.Errorf("CanonicalRole(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestValidRole(t *testing.T) {
	for _, raw := range []string{"customer", "manager", "warehouse_employee", "delivery_company", "agricultural_engineer", "agriculture_engineer"} {
		if !ValidRole(raw) {
			t.Errorf("ValidRole(%q) = false", raw)
		}
	}
	for _, raw := range []string{"", "admin", "Customer"} {
		if ValidRole(raw) {
			t.Errorf("ValidRole(%q) = true", raw)
		}
	}
}

func TestIdentityRoleSet(t *testing.T) {
	var nilID *Identity
	if nilID.RoleSet() != nil {
		t.Error("nil identity should have an empty role set")
	}
	if nilID.HasRole(RoleManager) {
		t.Error("nil identity should hold no roles")
	}

	singular := &Identity{Role: RoleManager}
	if set := singular.RoleSet(); len(set) != 1 || set[0] != RoleManager {
		t.Errorf("singular role set = %v", set)
	}

	plural := &Identity{Roles: []Role{RoleCustomer, RoleManager}}
	if !plural.HasRole(RoleManager) || !plural.HasRole(RoleCustomer) {
		t.Error("plural identity missing expected roles")
	}
	if plural.HasRole(RoleDeliveryCompany) {
		t.Error("plural identity holds a role it was never given")
	}
}
