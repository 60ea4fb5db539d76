package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersReturnsCopies(t *testing.T) {
	d := New()

	first := d.Users()
	require.NotEmpty(t, first)
	first[0].User.Name = "mutated"

	assert.NotEqual(t, "mutated", d.Users()[0].User.Name)
}

func TestRolesMatchDerivableCatalog(t *testing.T) {
	roles := New().Roles()

	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}

	assert.Equal(t, []string{"admin", "role_manager", "staff"}, names)
}
