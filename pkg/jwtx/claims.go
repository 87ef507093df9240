package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the default lifetime for session tokens. One hour
// keeps a stolen token's blast radius small while being long enough that a
// browsing session rarely re-authenticates.
const DefaultSessionTTL = time.Hour

// Claims are the session-token claims. Subject carries the immutable user ID;
// Email is the identity key membership sets are keyed by.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the authenticated user.
	Email string `json:"email,omitempty"`

	// Username is the display name, never used as an identity key.
	Username string `json:"username,omitempty"`
}

// NewSessionClaims builds minimally-correct claims for a signed-in user.
func NewSessionClaims(userID, email, username, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Email:    email,
		Username: username,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches the expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used before
// it is valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
