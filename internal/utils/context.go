// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, session token generation and validation,
// and other common operations.
package utils

import (
	"context"

	"github.com/samidy/monosync/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key used to store the authenticated session in the
// context. Used together with GetSessionFromContext for type-safe retrieval
// of the session from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SessionCtxKey, session)
var SessionCtxKey = contextKey("session")

// GetSessionFromContext retrieves the authenticated session from the context.
//
// Returns the session and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	return session, ok
}
