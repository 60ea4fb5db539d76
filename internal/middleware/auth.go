package middleware

import (
	"context"
	"net/http"

	"github.com/navidmo/cloud-based-oidc/internal/session"
)

// unexported, collision-proof context key
type sessionViewContextKeyType struct{}

var sessionViewKey = sessionViewContextKeyType{}

// ViewFromContext extracts the materialized session view from context.
// A false return means the request is unauthenticated.
func ViewFromContext(ctx context.Context) (*session.View, bool) {
	v, ok := ctx.Value(sessionViewKey).(*session.View)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// SessionMiddleware resolves the durable token record for the request
// cookie and materializes it into a session view. Resolution never
// fails a request on its own: a missing or expired record simply leaves
// the context without a view, and downstream guards decide what that
// means.
type SessionMiddleware struct {
	Store    session.Store
	Enricher *session.Enricher
}

func NewSessionMiddleware(store session.Store, enricher *session.Enricher) *SessionMiddleware {
	return &SessionMiddleware{Store: store, Enricher: enricher}
}

// Resolve attaches the session view (when one exists) and continues.
func (m *SessionMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		rec, err := m.Store.Get(r.Context(), cookie.Value)
		if err != nil || rec == nil {
			// Store errors degrade to "unauthenticated"; they never 500.
			next.ServeHTTP(w, r)
			return
		}

		view := m.Enricher.Materialize(rec)

		ctx := context.WithValue(r.Context(), sessionViewKey, view)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
