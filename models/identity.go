package models

// Identity is the authenticated principal record returned by the BaaS auth
// subsystem. ID is the opaque unique id used to key the per-user document.
type Identity struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Username string `json:"username,omitempty"`
	Verified bool   `json:"verified,omitempty"`
}

// AuthState is one auth-state-changed notification: the current bearer
// token plus the signed-in identity, or a nil identity after sign-out.
type AuthState struct {
	Token string
	User  *Identity
}

// SignedIn reports whether the state carries an authenticated identity.
func (s AuthState) SignedIn() bool {
	return s.User != nil && s.User.ID != ""
}
