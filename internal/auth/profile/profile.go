package profile

import (
	"errors"
	"strings"

	"github.com/navidmo/cloud-based-oidc/internal/auth"
)

// ErrMissingSubject indicates the provider profile carried no subject
// identifier. The subject is the one required field: it becomes the
// durable user key, so there is no safe default for it.
var ErrMissingSubject = errors.New("profile: missing subject identifier")

// RawProfile is the provider-shaped profile as returned by the user-info
// endpoint. Every field except Sub may be absent.
type RawProfile struct {
	Sub           string          `json:"sub"`
	Name          string          `json:"name"`
	GivenName     string          `json:"given_name"`
	FamilyName    string          `json:"family_name"`
	Email         string          `json:"email"`
	EmailVerified bool            `json:"email_verified"`
	Identities    []auth.Identity `json:"identities"`
}

// Normalize maps a raw provider profile plus the derived role set into
// the canonical user record. Pure function; fails only on a missing
// subject.
func Normalize(raw RawProfile, roles []auth.Role) (auth.CanonicalUser, error) {
	if strings.TrimSpace(raw.Sub) == "" {
		return auth.CanonicalUser{}, ErrMissingSubject
	}

	name := raw.Name
	if name == "" {
		// Fall back to the legal name parts when the provider sends no
		// display name.
		name = strings.TrimSpace(raw.GivenName + " " + raw.FamilyName)
	}

	identities := raw.Identities
	if identities == nil {
		identities = []auth.Identity{}
	}

	return auth.CanonicalUser{
		ID:            raw.Sub,
		Name:          name,
		Email:         raw.Email,
		EmailVerified: raw.EmailVerified,
		Roles:         roles,
		Identities:    identities,
	}, nil
}
