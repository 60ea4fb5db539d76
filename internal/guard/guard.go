// Package guard enforces authentication and role checks in front of
// page-data loaders. It is the sole enforcement point for
// server-rendered routes; capability predicates elsewhere are advisory.
package guard

import (
	"context"
	"net/http"

	"github.com/navidmo/cloud-based-oidc/internal/session"
)

// Result is what a loader produces: either page data or a redirect
// directive. A redirect is a routing outcome, not an error.
type Result struct {
	Status   int
	Redirect string
	Data     any
}

// Loader produces page data for a request. The session view is passed
// explicitly; there is no ambient session lookup.
type Loader func(ctx context.Context, sess *session.View) (Result, error)

// Routes names the two fixed redirect destinations. Their concrete
// paths are a configuration concern.
type Routes struct {
	SignIn       string
	Unauthorized string
}

// Guard wraps loaders with session and role enforcement.
type Guard struct {
	routes Routes
}

// New returns a Guard redirecting to the given routes.
func New(routes Routes) *Guard {
	return &Guard{routes: routes}
}

// Wrap decorates a loader. The wrapped loader's body never executes
// unless the request carries a session and, when requiredRoles is
// non-empty, the session's role names intersect it.
//
// No session yields a redirect to the sign-in route; a session without
// any required role yields a redirect to the unauthorized route. The
// loader's own result is returned untouched otherwise. Wrapping
// composes, so a loader may be guarded more than once.
func (g *Guard) Wrap(loader Loader, requiredRoles ...string) Loader {
	return func(ctx context.Context, sess *session.View) (Result, error) {
		if sess == nil {
			return Result{Status: http.StatusFound, Redirect: g.routes.SignIn}, nil
		}

		if len(requiredRoles) > 0 && !hasAny(sess, requiredRoles) {
			return Result{Status: http.StatusFound, Redirect: g.routes.Unauthorized}, nil
		}

		return loader(ctx, sess)
	}
}

func hasAny(sess *session.View, roleNames []string) bool {
	for _, name := range roleNames {
		if sess.User.HasRoleName(name) {
			return true
		}
	}
	return false
}
