package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bruinmovies/server/internal/movies/domain"
	"github.com/bruinmovies/server/internal/movies/store/drivers/sqlite"
	"github.com/bruinmovies/server/pkg/jwtx"
)

// captureMailer records the last passcode instead of sending it.
type captureMailer struct {
	to       string
	passcode string
	sends    int
	fail     bool
}

func (m *captureMailer) SendPasscode(_ context.Context, to, passcode string, _ int) error {
	if m.fail {
		return context.DeadlineExceeded
	}
	m.to = to
	m.passcode = passcode
	m.sends++
	return nil
}

func newTestAuthService(t *testing.T) (*AuthService, *captureMailer) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewHS256([]byte("test-secret"), "bruinmovies-test")
	require.NoError(t, err)

	mailer := &captureMailer{}
	return &AuthService{
		Store:  st,
		Signer: signer,
		Mailer: mailer,
		Issuer: "bruinmovies-test",
	}, mailer
}

func signUpAlice(t *testing.T, svc *AuthService) domain.User {
	t.Helper()
	user, err := svc.SignUp(context.Background(), SignUpParams{
		Username: "alice",
		Email:    "Alice@Example.COM",
		Password: "correct horse battery staple",
	})
	require.NoError(t, err)
	return user
}

func TestSignUp(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	user := signUpAlice(t, svc)
	require.Equal(t, "alice@example.com", user.Email, "email is normalized on registration")
	require.NotEmpty(t, user.ID)
	require.NotEqual(t, "correct horse battery staple", user.PasswordHash)

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := svc.SignUp(ctx, SignUpParams{
			Username: "alice2",
			Email:    "alice@example.com",
			Password: "another password",
		})
		require.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestSignInExchange(t *testing.T) {
	svc, mailer := newTestAuthService(t)
	ctx := context.Background()

	signUpAlice(t, svc)

	t.Run("wrong password yields no passcode", func(t *testing.T) {
		err := svc.InitiateSignIn(ctx, "alice@example.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		require.Zero(t, mailer.sends)
	})

	t.Run("unknown user looks like bad credentials", func(t *testing.T) {
		err := svc.InitiateSignIn(ctx, "nobody@example.com", "whatever")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("verify before initiate fails", func(t *testing.T) {
		_, _, err := svc.CompleteSignIn(ctx, "alice@example.com", "abcdef")
		require.ErrorIs(t, err, ErrNoPendingPasscode)
	})

	t.Run("correct password emails a passcode", func(t *testing.T) {
		require.NoError(t, svc.InitiateSignIn(ctx, "alice@example.com", "correct horse battery staple"))
		require.Equal(t, 1, mailer.sends)
		require.Equal(t, "alice@example.com", mailer.to)
		require.Len(t, mailer.passcode, 6)
	})

	t.Run("wrong passcode leaves the pending one usable", func(t *testing.T) {
		_, _, err := svc.CompleteSignIn(ctx, "alice@example.com", "000000")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		token, user, err := svc.CompleteSignIn(ctx, "alice@example.com", mailer.passcode)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		require.Equal(t, "alice", user.Username)
	})

	t.Run("a passcode is single use", func(t *testing.T) {
		_, _, err := svc.CompleteSignIn(ctx, "alice@example.com", mailer.passcode)
		require.ErrorIs(t, err, ErrNoPendingPasscode)
	})

	t.Run("reissue supersedes the previous passcode", func(t *testing.T) {
		require.NoError(t, svc.InitiateSignIn(ctx, "alice@example.com", "correct horse battery staple"))
		first := mailer.passcode

		require.NoError(t, svc.InitiateSignIn(ctx, "alice@example.com", "correct horse battery staple"))
		second := mailer.passcode

		if first != second {
			_, _, err := svc.CompleteSignIn(ctx, "alice@example.com", first)
			require.ErrorIs(t, err, ErrInvalidCredentials)
		}
		_, _, err := svc.CompleteSignIn(ctx, "alice@example.com", second)
		require.NoError(t, err)
	})

	t.Run("delivery failure surfaces and keeps the code verifiable", func(t *testing.T) {
		mailer.fail = true
		err := svc.InitiateSignIn(ctx, "alice@example.com", "correct horse battery staple")
		require.ErrorIs(t, err, ErrDeliveryFailed)
		mailer.fail = false
	})
}

func TestSignInPasscodeExpiry(t *testing.T) {
	svc, mailer := newTestAuthService(t)
	svc.PasscodeTTL = -time.Second // issue already-expired codes
	ctx := context.Background()

	signUpAlice(t, svc)
	require.NoError(t, svc.InitiateSignIn(ctx, "alice@example.com", "correct horse battery staple"))

	_, _, err := svc.CompleteSignIn(ctx, "alice@example.com", mailer.passcode)
	require.ErrorIs(t, err, ErrPasscodeExpired)

	// The expired code is consumed, not retryable.
	_, _, err = svc.CompleteSignIn(ctx, "alice@example.com", mailer.passcode)
	require.ErrorIs(t, err, ErrNoPendingPasscode)
}

func TestSignInByUsername(t *testing.T) {
	svc, mailer := newTestAuthService(t)
	svc.LoginKey = LoginByUsername
	ctx := context.Background()

	signUpAlice(t, svc)

	require.NoError(t, svc.InitiateSignIn(ctx, "alice", "correct horse battery staple"))
	token, user, err := svc.CompleteSignIn(ctx, "alice", mailer.passcode)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "alice@example.com", user.Email)
}

func TestSessionTokenClaims(t *testing.T) {
	svc, mailer := newTestAuthService(t)
	ctx := context.Background()

	user := signUpAlice(t, svc)
	require.NoError(t, svc.InitiateSignIn(ctx, "alice@example.com", "correct horse battery staple"))
	token, _, err := svc.CompleteSignIn(ctx, "alice@example.com", mailer.passcode)
	require.NoError(t, err)

	verifier, err := jwtx.NewHS256([]byte("test-secret"), "bruinmovies-test")
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.Subject)
	require.Equal(t, "alice@example.com", claims.Email)
	require.Equal(t, "alice", claims.Username)
	require.WithinDuration(t, time.Now().Add(jwtx.DefaultSessionTTL), claims.ExpiresAt.Time, time.Minute)
}
