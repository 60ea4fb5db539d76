package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/navidmo/cloud-based-oidc/internal/auth"
	"github.com/navidmo/cloud-based-oidc/internal/session"
)

func staffSession() *session.View {
	return &session.View{
		User: auth.CanonicalUser{
			ID:    "u1",
			Roles: []auth.Role{{ID: "staff", Name: "staff"}},
		},
	}
}

func TestHasRole(t *testing.T) {
	assert.True(t, HasRole(staffSession(), "staff"))
	assert.False(t, HasRole(staffSession(), "admin"))
}

func TestHasRoleAbsentSession(t *testing.T) {
	assert.False(t, HasRole(nil, "admin"))
}

func TestHasRoleNoRoles(t *testing.T) {
	sess := &session.View{User: auth.CanonicalUser{ID: "u1"}}

	assert.False(t, HasRole(sess, "staff"))
}

func TestHasAnyRole(t *testing.T) {
	assert.True(t, HasAnyRole(staffSession(), []string{"admin", "staff"}))
	assert.False(t, HasAnyRole(staffSession(), []string{"admin", "role_manager"}))
	assert.False(t, HasAnyRole(staffSession(), nil))
}

func TestHasAnyRoleAbsentSession(t *testing.T) {
	assert.False(t, HasAnyRole(nil, []string{"admin"}))
}
