package provider

import "fmt"

// Registry holds the configured OIDC providers and allows lookup by
// name. The deployment assumes a single identity provider, but the
// registry keeps the lookup explicit rather than ambient.
type Registry struct {
	providers map[string]OIDCProvider
}

// NewRegistry registers the given providers by name.
// Provider names must be unique.
func NewRegistry(list ...OIDCProvider) *Registry {
	m := make(map[string]OIDCProvider)
	for _, p := range list {
		m[p.Name()] = p
	}
	return &Registry{providers: m}
}

// Get returns the provider by name or an error if not registered.
func (r *Registry) Get(name string) (OIDCProvider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown oidc provider: %s", name)
	}
	return p, nil
}
