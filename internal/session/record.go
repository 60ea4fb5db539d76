package session

import (
	"time"

	"github.com/navidmo/cloud-based-oidc/internal/auth"
)

// Record is the durable, server-side enrichment of an issued token:
// the canonical user, the raw access token, and the roles in force at
// issuance. It is created on the authorization-code exchange, persists
// until the token expires or is rotated, and is never exposed to the
// client directly.
type Record struct {
	User        auth.CanonicalUser `json:"user"`
	AccessToken string             `json:"access_token"`
	IssuedAt    time.Time          `json:"issued_at"`
	Roles       []auth.Role        `json:"roles"`
}

// View is the externally visible projection of a Record. It is rebuilt
// from the record on every session read and never mutated on its own,
// so the two representations cannot drift apart.
type View struct {
	User        auth.CanonicalUser `json:"user"`
	AccessToken string             `json:"accessToken"`
}
