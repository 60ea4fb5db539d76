package token

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navidmo/cloud-based-oidc/internal/auth"
)

// forgeToken builds an unsigned compact token carrying the given payload.
// The signature segment is garbage on purpose: role derivation must not
// care about it.
func forgeToken(t *testing.T, payload map[string]any) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	return header + "." + base64.RawURLEncoding.EncodeToString(body) + ".sig"
}

func roleNames(roles []auth.Role) []string {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	return names
}

func TestDeriveRolesAdminStaff(t *testing.T) {
	tok := forgeToken(t, map[string]any{"sub": "u1", "scope": "admin staff"})

	roles := DeriveRoles(tok)

	assert.ElementsMatch(t, []string{"admin", "staff"}, roleNames(roles))
}

func TestDeriveRolesOrderIndependent(t *testing.T) {
	a := DeriveRoles(forgeToken(t, map[string]any{"scope": "admin staff"}))
	b := DeriveRoles(forgeToken(t, map[string]any{"scope": "staff admin"}))

	assert.Equal(t, a, b)
}

func TestDeriveRolesDuplicateScopes(t *testing.T) {
	tok := forgeToken(t, map[string]any{"scope": "staff staff staff"})

	roles := DeriveRoles(tok)

	require.Len(t, roles, 1)
	assert.Equal(t, auth.Role{ID: "staff", Name: "staff"}, roles[0])
}

func TestDeriveRolesAppIDManageRoles(t *testing.T) {
	tok := forgeToken(t, map[string]any{"scope": "openid appid_manage_roles"})

	roles := DeriveRoles(tok)

	require.Len(t, roles, 1)
	assert.Equal(t, auth.Role{ID: "role_manager", Name: "role_manager"}, roles[0])
}

func TestDeriveRolesIgnoresUnknownScopes(t *testing.T) {
	tok := forgeToken(t, map[string]any{"scope": "openid profile email offline_access"})

	assert.Empty(t, DeriveRoles(tok))
}

func TestDeriveRolesSoftFailures(t *testing.T) {
	cases := map[string]string{
		"empty string":       "",
		"single segment":     "nonsense",
		"two segments":       "abc.def",
		"bad base64 payload": "eyJhbGciOiJSUzI1NiJ9.!!!not-base64!!!.sig",
		"payload not json":   "eyJhbGciOiJSUzI1NiJ9." + base64.RawURLEncoding.EncodeToString([]byte("plain text")) + ".sig",
	}

	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Empty(t, DeriveRoles(tok))
			})
		})
	}
}

func TestDeriveRolesNoScopeClaim(t *testing.T) {
	tok := forgeToken(t, map[string]any{"sub": "u1", "aud": "web"})

	assert.Empty(t, DeriveRoles(tok))
}

func TestDeriveRolesReferentiallyTransparent(t *testing.T) {
	tok := forgeToken(t, map[string]any{"scope": "admin appid_manage_roles"})

	first := DeriveRoles(tok)
	second := DeriveRoles(tok)

	assert.Equal(t, first, second)
}

func TestCatalogSortedByName(t *testing.T) {
	assert.Equal(t, []auth.Role{
		{ID: "admin", Name: "admin"},
		{ID: "role_manager", Name: "role_manager"},
		{ID: "staff", Name: "staff"},
	}, Catalog())
}
