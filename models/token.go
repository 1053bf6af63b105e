package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is an issued or verified access token. UserID mirrors the "sub"
// claim.
type Token struct {
	jwt.RegisteredClaims

	SignedString string `json:"-"`
	UserID       string `json:"-"`
}

func (t Token) String() string { return t.SignedString }

// ExpiresIn reports how long the token stays valid after now. A token
// without an expiry or one that already expired yields zero.
func (t Token) ExpiresIn(now time.Time) time.Duration {
	if t.ExpiresAt == nil {
		return 0
	}
	return max(t.ExpiresAt.Sub(now), 0)
}
