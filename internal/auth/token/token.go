package token

import (
	"sort"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/navidmo/cloud-based-oidc/internal/auth"
)

// scopeRoles maps a scope string found in the access token to the role it
// grants. New role scopes are added here; call sites never change.
var scopeRoles = map[string]auth.Role{
	"admin":              {ID: "admin", Name: "admin"},
	"staff":              {ID: "staff", Name: "staff"},
	"appid_manage_roles": {ID: "role_manager", Name: "role_manager"},
}

// scopeClaims captures only what role derivation needs from the payload.
type scopeClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// DeriveRoles decodes the payload segment of a compact access token and
// maps its scope claim to roles. Signature verification is NOT performed
// here; the OIDC provider verifies tokens before they reach this point.
//
// DeriveRoles never fails: a malformed token, an undecodable payload, or
// a missing scope claim all yield the empty set. Given the same token
// string it always returns the same roles.
func DeriveRoles(accessToken string) []auth.Role {
	if accessToken == "" {
		return nil
	}

	parser := jwt.NewParser(jwt.WithoutClaimsValidation())

	claims := &scopeClaims{}
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return nil
	}

	if claims.Scope == "" {
		return nil
	}

	// The scope claim is a single space-delimited string. Duplicates
	// collapse; unrecognized scopes are ignored, not errors.
	seen := make(map[string]struct{})
	var roles []auth.Role
	for _, s := range strings.Fields(claims.Scope) {
		role, ok := scopeRoles[s]
		if !ok {
			continue
		}
		if _, dup := seen[role.Name]; dup {
			continue
		}
		seen[role.Name] = struct{}{}
		roles = append(roles, role)
	}

	sort.Slice(roles, func(i, j int) bool { return roles[i].Name < roles[j].Name })
	return roles
}

// Catalog returns every role the mapping can derive, sorted by name.
// Admin listings display this; no authorization decision reads it.
func Catalog() []auth.Role {
	out := make([]auth.Role, 0, len(scopeRoles))
	for _, r := range scopeRoles {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
