package appid

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/navidmo/cloud-based-oidc/internal/auth/profile"
	"github.com/navidmo/cloud-based-oidc/internal/auth/provider"
	"github.com/navidmo/cloud-based-oidc/internal/logger"
)

const providerName = "appid"

// Provider implements OAuth + OIDC authentication against an IBM App
// ID-style tenant. It returns profile and token facts only; sessions
// and roles are built downstream.
type Provider struct {
	oauthConfig *oauth2.Config
	oidcCore    *oidc.Provider
	verifier    *oidc.IDTokenVerifier
}

// New initializes the provider from the tenant's discovery document.
// issuer must be the tenant issuer URL carrying
// /.well-known/openid-configuration.
func New(
	ctx context.Context,
	issuer string,
	clientID string,
	clientSecret string,
	redirectURL string,
) (*Provider, error) {

	if issuer == "" || clientID == "" || redirectURL == "" {
		return nil, errors.New("appid oauth config missing required fields")
	}

	oidcProvider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to init appid oidc provider: %w", err)
	}

	verifier := oidcProvider.Verifier(&oidc.Config{
		ClientID: clientID,
	})

	oauthCfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     oidcProvider.Endpoint(),
		Scopes: []string{
			oidc.ScopeOpenID,
			"profile",
			"email",
		},
	}

	return &Provider{
		oauthConfig: oauthCfg,
		oidcCore:    oidcProvider,
		verifier:    verifier,
	}, nil
}

// Name returns the provider identifier used by the registry.
func (p *Provider) Name() string {
	return providerName
}

// AuthCodeURL builds the OAuth authorization URL with PKCE parameters.
func (p *Provider) AuthCodeURL(state string, codeChallenge string) string {
	return p.oauthConfig.AuthCodeURL(
		state,
		oauth2.AccessTypeOnline,
		oauth2.SetAuthURLParam("code_challenge", codeChallenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)
}

// ExchangeCode exchanges the authorization code, verifies the ID token
// against the tenant's signing keys, and fetches the user-info profile.
// This method MUST NOT create sessions or derive roles.
func (p *Provider) ExchangeCode(
	ctx context.Context,
	code string,
	codeVerifier string,
) (*provider.Grant, error) {

	token, err := p.oauthConfig.Exchange(
		ctx,
		code,
		oauth2.SetAuthURLParam("code_verifier", codeVerifier),
	)
	if err != nil {
		logger.Error("appid token exchange failed", map[string]any{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", provider.ErrExchangeFailed, err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, fmt.Errorf("%w: no id_token in response", provider.ErrExchangeFailed)
	}

	idToken, err := p.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		logger.Error("appid id_token verification failed", map[string]any{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", provider.ErrExchangeFailed, err)
	}

	var raw profile.RawProfile

	userInfo, err := p.oidcCore.UserInfo(ctx, oauth2.StaticTokenSource(token))
	if err != nil {
		logger.Error("appid user-info fetch failed", map[string]any{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", provider.ErrExchangeFailed, err)
	}

	if err := userInfo.Claims(&raw); err != nil {
		return nil, fmt.Errorf("%w: user-info claims parse: %v", provider.ErrExchangeFailed, err)
	}

	logger.Info("appid oidc verified", map[string]any{
		"issuer":          idToken.Issuer,
		"subject_present": raw.Sub != "",
		"email_present":   raw.Email != "",
		"email_verified":  raw.EmailVerified,
		"audience":        idToken.Audience,
		"expiry_unix":     idToken.Expiry.Unix(),
	})

	return &provider.Grant{
		Profile: raw,
		Tokens: provider.TokenBundle{
			AccessToken: token.AccessToken,
			RawIDToken:  rawIDToken,
			Expiry:      token.Expiry,
		},
	}, nil
}
