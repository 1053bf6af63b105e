// Package utils provides general-purpose helpers used across the
// application: typed context keys, JSON response writers, JWT issuing and
// verification, bearer header parsing and UUID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-logistics/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key under which the access guard stores the
// authenticated [models.PublicUser].
var UserCtxKey = contextKey("user")

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user models.PublicUser) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
//
// ok is false when no user is stored or the value has an unexpected type.
//
// Example usage:
//
//	user, ok := utils.GetUserFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserFromContext(ctx context.Context) (models.PublicUser, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.PublicUser)
	return user, ok
}
