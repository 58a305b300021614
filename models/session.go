package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the cookie-resident authenticated session minted by the gate
// after a successful token verification. It lives only inside the signed
// cookie; nothing is persisted server-side.
type Session struct {
	// UserID is the auth identity id confirmed by the verification endpoint.
	UserID string `json:"uid"`

	// Email of the authenticated identity, possibly empty.
	Email string `json:"email"`

	// IssuedAt is when the session cookie was minted.
	IssuedAt time.Time `json:"iat"`
}

// SessionClaims is the JWT claim set carried by the session cookie.
type SessionClaims struct {
	jwt.RegisteredClaims

	Email string `json:"email,omitempty"`
}

// Session converts the validated claims back into a Session value.
func (c *SessionClaims) Session() Session {
	s := Session{
		UserID: c.Subject,
		Email:  c.Email,
	}
	if c.IssuedAt != nil {
		s.IssuedAt = c.IssuedAt.Time
	}
	return s
}
