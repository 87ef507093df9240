package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is anything that can mint a signed session token from claims.
type Signer interface {
	Sign(Claims) (string, error)
}

// Verifier validates a token string and returns the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// HS256 signs and verifies session tokens with a shared HMAC-SHA256 secret.
// A single symmetric key is enough here: the same process both issues and
// verifies, and tokens never cross a trust boundary to another service.
type HS256 struct {
	secret []byte
	issuer string
}

// NewHS256 builds a combined signer/verifier from the shared secret.
// The secret must be non-empty; key sizing is the caller's problem.
func NewHS256(secret []byte, issuer string) (*HS256, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwtx: empty HS256 secret")
	}
	return &HS256{secret: secret, issuer: issuer}, nil
}

// Sign produces a compact signed token for the claims.
func (h *HS256) Sign(c Claims) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return tok.SignedString(h.secret)
}

// Verify parses the token, checks the signature and algorithm, then
// validates issuer and the exp/nbf window.
func (h *HS256) Verify(tokenString string) (Claims, error) {
	var claims Claims

	tok, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrAlgMismatch
		}
		return h.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return Claims{}, ErrNotYetValid
		default:
			return Claims{}, err
		}
	}
	if !tok.Valid {
		return Claims{}, ErrInvalidSig
	}

	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(); err != nil {
		return Claims{}, err
	}

	return claims, nil
}
