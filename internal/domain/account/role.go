package account

import "fmt"

// Role represents an account's administrative tier.
type Role string

const (
	// RolePrimaryAdmin accounts own the system; at least one must remain
	// active at all times and they can never be deleted.
	RolePrimaryAdmin Role = "PRIMARY_ADMIN"
	// RoleDelegateAdmin accounts are restricted co-administrators created
	// and removed by primary administrators.
	RoleDelegateAdmin Role = "DELEGATE_ADMIN"
)

// ValidRoles enumerates the accepted roles.
var ValidRoles = map[Role]bool{
	RolePrimaryAdmin:  true,
	RoleDelegateAdmin: true,
}

// ParseRole converts a stored role string into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !ValidRoles[r] {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// String returns the stored representation.
func (r Role) String() string {
	return string(r)
}

// Deletable reports whether accounts of this role may be removed through the
// lifecycle manager. Primary administrators are only ever deactivated.
func (r Role) Deletable() bool {
	return r == RoleDelegateAdmin
}
