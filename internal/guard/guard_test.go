package guard

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navidmo/cloud-based-oidc/internal/auth"
	"github.com/navidmo/cloud-based-oidc/internal/session"
)

var testRoutes = Routes{SignIn: "/login", Unauthorized: "/unauthorized"}

func sessionWithRoles(names ...string) *session.View {
	roles := make([]auth.Role, 0, len(names))
	for _, n := range names {
		roles = append(roles, auth.Role{ID: n, Name: n})
	}
	return &session.View{User: auth.CanonicalUser{ID: "u1", Roles: roles}}
}

// countingLoader records whether the wrapped loader body ever ran.
func countingLoader(result Result, err error) (Loader, *int) {
	calls := 0
	return func(ctx context.Context, sess *session.View) (Result, error) {
		calls++
		return result, err
	}, &calls
}

func TestWrapNoSessionRedirectsToSignIn(t *testing.T) {
	g := New(testRoutes)
	loader, calls := countingLoader(Result{Data: "page"}, nil)

	res, err := g.Wrap(loader)(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, res.Status)
	assert.Equal(t, "/login", res.Redirect)
	assert.Zero(t, *calls)
}

func TestWrapInsufficientRoleRedirectsToUnauthorized(t *testing.T) {
	g := New(testRoutes)
	loader, calls := countingLoader(Result{Data: "page"}, nil)

	res, err := g.Wrap(loader, "admin")(context.Background(), sessionWithRoles("staff"))

	require.NoError(t, err)
	assert.Equal(t, "/unauthorized", res.Redirect)
	assert.Zero(t, *calls)
}

func TestWrapAnyRequiredRoleSuffices(t *testing.T) {
	g := New(testRoutes)
	loader, calls := countingLoader(Result{Data: "page"}, nil)

	res, err := g.Wrap(loader, "admin", "staff")(context.Background(), sessionWithRoles("staff"))

	require.NoError(t, err)
	assert.Equal(t, 1, *calls)
	assert.Equal(t, "page", res.Data)
	assert.Empty(t, res.Redirect)
}

func TestWrapNoRequiredRolesOnlyNeedsSession(t *testing.T) {
	g := New(testRoutes)
	loader, calls := countingLoader(Result{Data: 42}, nil)

	res, err := g.Wrap(loader)(context.Background(), sessionWithRoles())

	require.NoError(t, err)
	assert.Equal(t, 1, *calls)
	assert.Equal(t, 42, res.Data)
}

func TestWrapReturnsLoaderResultUnmodified(t *testing.T) {
	g := New(testRoutes)
	wantErr := errors.New("loader failed")
	loader, _ := countingLoader(Result{Status: http.StatusTeapot, Data: "body"}, wantErr)

	res, err := g.Wrap(loader, "staff")(context.Background(), sessionWithRoles("staff"))

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, http.StatusTeapot, res.Status)
	assert.Equal(t, "body", res.Data)
}

func TestWrapComposes(t *testing.T) {
	g := New(testRoutes)
	loader, calls := countingLoader(Result{Data: "page"}, nil)

	// Guarded twice: outer requires a session, inner requires admin.
	wrapped := g.Wrap(g.Wrap(loader, "admin"))

	res, err := wrapped(context.Background(), sessionWithRoles("staff"))
	require.NoError(t, err)
	assert.Equal(t, "/unauthorized", res.Redirect)
	assert.Zero(t, *calls)

	res, err = wrapped(context.Background(), sessionWithRoles("admin"))
	require.NoError(t, err)
	assert.Equal(t, "page", res.Data)
	assert.Equal(t, 1, *calls)
}
