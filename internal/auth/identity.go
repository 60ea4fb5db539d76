package auth

// Role is a named authorization grant derived from an access token's
// scope claim. Authorization decisions compare by Name; ID is an opaque
// provider-assigned value.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProfileDetail carries the optional structured profile attached to a
// linked identity. Informational only, never consulted for authorization.
type ProfileDetail struct {
	DisplayName string         `json:"displayName,omitempty"`
	Active      bool           `json:"active,omitempty"`
	Emails      []ProfileEmail `json:"emails,omitempty"`
	LegalName   *LegalName     `json:"name,omitempty"`
	Status      string         `json:"status,omitempty"`
	IdpType     string         `json:"idpType,omitempty"`
}

// ProfileEmail is an address entry inside a profile detail. At most one
// entry per identity carries Primary = true.
type ProfileEmail struct {
	Value   string `json:"value"`
	Primary bool   `json:"primary"`
}

// LegalName holds the legal name parts as reported by the provider.
type LegalName struct {
	GivenName  string `json:"givenName,omitempty"`
	FamilyName string `json:"familyName,omitempty"`
	Formatted  string `json:"formatted,omitempty"`
}

// Identity represents one linked external account on a user. It contains
// facts only, no decisions.
type Identity struct {
	Provider      string         `json:"provider"`
	ID            string         `json:"id"`
	ProfileDetail *ProfileDetail `json:"idpUserInfo,omitempty"`
}

// CanonicalUser is the normalized user record built once per
// authentication event. ID equals the subject claim and is the durable
// key used everywhere downstream; it is never defaulted.
type CanonicalUser struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	EmailVerified bool       `json:"email_verified"`
	Roles         []Role     `json:"roles"`
	Identities    []Identity `json:"identities"`
}

// HasRoleName reports whether the user carries a role with the given name.
func (u CanonicalUser) HasRoleName(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}
