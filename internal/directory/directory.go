// Package directory serves the read-only user and role listings shown
// on admin pages. The data is an in-memory mock: the service derives
// authorization from tokens and deliberately keeps no user store.
package directory

import (
	"github.com/navidmo/cloud-based-oidc/internal/auth"
	"github.com/navidmo/cloud-based-oidc/internal/auth/token"
)

// Entry is one row of the admin user listing.
type Entry struct {
	User  auth.CanonicalUser `json:"user"`
	Notes string             `json:"notes,omitempty"`
}

// Directory exposes static listings for display-only admin screens.
type Directory struct {
	users []Entry
	roles []auth.Role
}

// New returns a directory seeded with representative mock data.
func New() *Directory {
	return &Directory{
		users: []Entry{
			{
				User: auth.CanonicalUser{
					ID:            "mock-admin-1",
					Name:          "Site Admin",
					Email:         "admin@example.com",
					EmailVerified: true,
					Roles: []auth.Role{
						{ID: "admin", Name: "admin"},
						{ID: "role_manager", Name: "role_manager"},
					},
				},
			},
			{
				User: auth.CanonicalUser{
					ID:            "mock-staff-1",
					Name:          "Staff Member",
					Email:         "staff@example.com",
					EmailVerified: true,
					Roles:         []auth.Role{{ID: "staff", Name: "staff"}},
				},
			},
			{
				User: auth.CanonicalUser{
					ID:    "mock-visitor-1",
					Name:  "Plain Visitor",
					Email: "visitor@example.com",
				},
				Notes: "no elevated roles",
			},
		},
		// The role listing is the derivable catalog, not stored state.
		roles: token.Catalog(),
	}
}

// Users returns the mock user listing.
func (d *Directory) Users() []Entry {
	out := make([]Entry, len(d.users))
	copy(out, d.users)
	return out
}

// Roles returns the mock role listing.
func (d *Directory) Roles() []auth.Role {
	out := make([]auth.Role, len(d.roles))
	copy(out, d.roles)
	return out
}
