package auth

import "fmt"

// Role is a coarse permission label used to gate resource operations.
type Role string

const (
	// RoleUser is the default role assigned at registration.
	RoleUser Role = "USER"
	// RoleAdmin is required for destructive operations.
	RoleAdmin Role = "ADMIN"
)

// ParseRole converts a raw role string into a Role. Unknown values are
// rejected — a token carrying an unrecognized role claim must fail
// resolution, never fall back to a default role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("auth: unknown role %q", s)
	}
}

// Principal is the authenticated identity and role resolved for a single
// request. It is derived fresh per request and never cached across requests.
type Principal struct {
	// Identity is the unique identity string (email or username).
	Identity string
	// Role is the principal's role. Empty for the anonymous principal.
	Role Role
}

// Anonymous returns the principal used by the open strategy: no identity,
// no role. Authorization against it only succeeds when an operation's
// required-role set is empty.
func Anonymous() Principal {
	return Principal{}
}

// IsAnonymous reports whether the principal carries no identity.
func (p Principal) IsAnonymous() bool {
	return p.Identity == "" && p.Role == ""
}
