package rbac

import "testing"

func TestValid(t *testing.T) {
	for _, r := range AllRoles() {
		if !Valid(r) {
			t.Fatalf("expected %q to be valid", r)
		}
	}
	for _, r := range []string{"", "root", "Admin", "super_admin"} {
		if Valid(r) {
			t.Fatalf("expected %q to be invalid", r)
		}
	}
}

func TestCanAdminister(t *testing.T) {
	cases := []struct {
		actor, target string
		want          bool
	}{
		{RoleSuperAdmin, RoleSuperAdmin, true},
		{RoleSuperAdmin, RoleAdmin, true},
		{RoleSuperAdmin, RoleUser, true},

		{RoleAdmin, RoleBranchAdmin, true},
		{RoleAdmin, RoleUser, true},
		{RoleAdmin, RoleAdmin, false},
		{RoleAdmin, RoleSuperAdmin, false},

		{RoleBranchAdmin, RoleUser, true},
		{RoleBranchAdmin, RoleBranchAdmin, false},
		{RoleBranchAdmin, RoleAdmin, false},

		{RoleUser, RoleUser, false},
		{"unknown", RoleUser, false},
	}
	for _, tc := range cases {
		if got := CanAdminister(tc.actor, tc.target); got != tc.want {
			t.Fatalf("CanAdminister(%q, %q) = %v, want %v", tc.actor, tc.target, got, tc.want)
		}
	}
}
