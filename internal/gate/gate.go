// Package gate answers "does this session carry role X" for conditional
// rendering and branching. The same predicates run server-side and are
// projected to clients over /api/session/capabilities, so both sides
// evaluate identical semantics.
//
// Gate results are advisory. Sensitive actions must additionally pass
// through the route guard or an equivalent server-side check; a client
// asserting a capability proves nothing.
package gate

import "github.com/navidmo/cloud-based-oidc/internal/session"

// HasRole reports whether the session carries the named role. Total:
// an absent session or empty role list is false, never an error.
func HasRole(sess *session.View, roleName string) bool {
	if sess == nil {
		return false
	}
	return sess.User.HasRoleName(roleName)
}

// HasAnyRole reports whether the session carries at least one of the
// named roles.
func HasAnyRole(sess *session.View, roleNames []string) bool {
	if sess == nil {
		return false
	}
	for _, name := range roleNames {
		if sess.User.HasRoleName(name) {
			return true
		}
	}
	return false
}
