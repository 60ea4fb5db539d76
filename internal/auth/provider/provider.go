package provider

import (
	"context"
	"errors"
	"time"

	"github.com/navidmo/cloud-based-oidc/internal/auth/profile"
)

// ErrExchangeFailed wraps any failure of the upstream code exchange or
// user-info fetch. Callers report it to the user as a generic sign-in
// failure; the wrapped detail is for logs only.
var ErrExchangeFailed = errors.New("provider: code exchange failed")

// TokenBundle holds the raw tokens produced by a code exchange.
type TokenBundle struct {
	AccessToken string
	RawIDToken  string
	Expiry      time.Time
}

// Grant is the complete outcome of one authorization-code exchange: the
// provider-shaped profile plus the raw token bundle. No roles, no user
// record; downstream stages derive those.
type Grant struct {
	Profile profile.RawProfile
	Tokens  TokenBundle
}

// OIDCProvider defines the contract the identity-provider collaborator
// must implement. Implementations return profile and token facts only
// and must not perform session management or role derivation.
type OIDCProvider interface {
	// Name returns the provider identifier (e.g. "appid").
	Name() string

	// AuthCodeURL returns the OAuth authorization URL.
	// State and PKCE parameters are provided by the caller.
	AuthCodeURL(state string, codeChallenge string) string

	// ExchangeCode exchanges the authorization code for tokens, verifies
	// the ID token, fetches the user-info profile, and returns both.
	ExchangeCode(
		ctx context.Context,
		code string,
		codeVerifier string,
	) (*Grant, error)
}
