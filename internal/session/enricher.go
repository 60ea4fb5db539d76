package session

import (
	"time"

	"github.com/navidmo/cloud-based-oidc/internal/auth/profile"
	"github.com/navidmo/cloud-based-oidc/internal/auth/provider"
	"github.com/navidmo/cloud-based-oidc/internal/auth/token"
	"github.com/navidmo/cloud-based-oidc/internal/logger"
)

// Enricher is the two-stage callback chain between token issuance and
// session reads. Stage A runs once per code exchange (and on token
// refresh) and builds the durable Record; stage B runs on every session
// read and projects the Record into a View. There is no other state.
type Enricher struct {
	now func() time.Time
}

// NewEnricher returns an Enricher using wall-clock time.
func NewEnricher() *Enricher {
	return &Enricher{now: time.Now}
}

// OnTokenIssued is stage A. With a fresh profile it derives roles from
// the access token, normalizes the profile, and returns a new Record.
// With no fresh profile (refresh without new account data) the existing
// record passes through unchanged: the stage never regenerates roles
// from context it was not given.
//
// A nil Record return means no durable record was produced; stage B
// then reports an absent session. The error carries internal detail
// for logs only, never for the user.
func (e *Enricher) OnTokenIssued(
	existing *Record,
	raw *profile.RawProfile,
	tokens provider.TokenBundle,
) (*Record, error) {

	if raw == nil {
		// No fresh account data. Pass through whatever we already have.
		return existing, nil
	}

	roles := token.DeriveRoles(tokens.AccessToken)

	user, err := profile.Normalize(*raw, roles)
	if err != nil {
		logger.Error("session enrichment failed", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	return &Record{
		User:        user,
		AccessToken: tokens.AccessToken,
		IssuedAt:    e.now().UTC(),
		Roles:       roles,
	}, nil
}

// Materialize is stage B: a pure projection of the durable record into
// the externally visible session. A nil record yields a nil view, which
// callers must treat as "unauthenticated" — never as "authenticated
// with no roles".
func (e *Enricher) Materialize(rec *Record) *View {
	if rec == nil {
		return nil
	}
	return &View{
		User:        rec.User,
		AccessToken: rec.AccessToken,
	}
}
