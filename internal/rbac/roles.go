package rbac

// Role names. Keep these stable; they are part of auth contracts and are
// persisted on user records.
const (
	RoleUser        = "user"
	RoleBranchAdmin = "branch_admin"
	RoleAdmin       = "admin"
	RoleSuperAdmin  = "superadmin"
)

// AllRoles is the closed role enumeration, ordered by ascending privilege.
func AllRoles() []string {
	return []string{RoleUser, RoleBranchAdmin, RoleAdmin, RoleSuperAdmin}
}

func Valid(role string) bool {
	switch role {
	case RoleUser, RoleBranchAdmin, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

func IsSuperAdmin(role string) bool { return role == RoleSuperAdmin }

// adminMatrix maps a role to the set of roles it may administer. The table
// is the single source of truth; permission asymmetries must be visible
// here, not buried in conditionals.
var adminMatrix = map[string][]string{
	RoleSuperAdmin:  {RoleSuperAdmin, RoleAdmin, RoleBranchAdmin, RoleUser},
	RoleAdmin:       {RoleBranchAdmin, RoleUser},
	RoleBranchAdmin: {RoleUser},
	RoleUser:        {},
}

// CanAdminister reports whether actor may create, modify, or delete accounts
// holding target.
func CanAdminister(actor, target string) bool {
	for _, r := range adminMatrix[actor] {
		if r == target {
			return true
		}
	}
	return false
}
