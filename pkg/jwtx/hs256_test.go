package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testIssuer = "bruinmovies-test"

func newTestHS256(t *testing.T) *HS256 {
	t.Helper()
	h, err := NewHS256([]byte("0123456789abcdef0123456789abcdef"), testIssuer)
	require.NoError(t, err)
	return h
}

func TestHS256SignVerifyRoundTrip(t *testing.T) {
	t.Parallel()
	h := newTestHS256(t)

	claims := NewSessionClaims(
		"01JD3ZK8T4WQJ5P2YB7C9E1XFA", "joe@ucla.edu", "joebruin",
		testIssuer, DefaultSessionTTL, time.Now(),
	)

	token, err := h.Sign(claims)
	require.NoError(t, err)

	got, err := h.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "01JD3ZK8T4WQJ5P2YB7C9E1XFA", got.Subject)
	require.Equal(t, "joe@ucla.edu", got.Email)
	require.Equal(t, "joebruin", got.Username)
	require.NotEmpty(t, got.ID, "jti should be populated")
}

func TestHS256RejectsWrongSecret(t *testing.T) {
	t.Parallel()
	h := newTestHS256(t)

	other, err := NewHS256([]byte("another-secret-entirely-32-bytes"), testIssuer)
	require.NoError(t, err)

	token, err := h.Sign(NewSessionClaims("u1", "a@x.com", "a", testIssuer, time.Minute, time.Now()))
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestHS256RejectsExpired(t *testing.T) {
	t.Parallel()
	h := newTestHS256(t)

	stale := NewSessionClaims("u1", "a@x.com", "a", testIssuer, time.Minute, time.Now().Add(-2*time.Hour))
	token, err := h.Sign(stale)
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestHS256RejectsIssuerMismatch(t *testing.T) {
	t.Parallel()
	h := newTestHS256(t)

	foreign, err := NewHS256([]byte("0123456789abcdef0123456789abcdef"), "someone-else")
	require.NoError(t, err)

	token, err := foreign.Sign(NewSessionClaims("u1", "a@x.com", "a", "someone-else", time.Minute, time.Now()))
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestHS256RejectsGarbage(t *testing.T) {
	t.Parallel()
	h := newTestHS256(t)

	_, err := h.Verify("not.a.token")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestNewHS256RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewHS256(nil, testIssuer)
	require.Error(t, err)
}
