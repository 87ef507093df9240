package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bruinmovies/server/internal/movies/domain"
	"github.com/bruinmovies/server/internal/movies/store"
	"github.com/bruinmovies/server/pkg/cryptox"
	"github.com/bruinmovies/server/pkg/idx"
	"github.com/bruinmovies/server/pkg/jwtx"
	"github.com/bruinmovies/server/pkg/mailx"
	"github.com/bruinmovies/server/pkg/slogx"
)

const DefaultPasscodeTTL = 10 * time.Minute

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNoPendingPasscode  = errors.New("no pending passcode for this user")
	ErrPasscodeExpired    = errors.New("passcode expired")
	ErrDeliveryFailed     = errors.New("failed to deliver passcode")
)

// LoginKey selects which identifier the sign-in flow matches users on.
type LoginKey string

const (
	LoginByEmail    LoginKey = "email"
	LoginByUsername LoginKey = "username"
)

type AuthService struct {
	Store       store.Store
	Signer      jwtx.Signer
	Mailer      mailx.Mailer
	Issuer      string
	LoginKey    LoginKey
	PasscodeTTL time.Duration
	SessionTTL  time.Duration
}

type SignUpParams struct {
	Username       string
	Email          string
	Password       string
	Biography      string
	ProfilePicture string
	GenreInterests string
	Major          string
	Year           string
}

// SignUp registers a new account. It does not issue a session token; the
// caller must complete the sign-in exchange to get one.
func (s *AuthService) SignUp(ctx context.Context, p SignUpParams) (domain.User, error) {
	hash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:             idx.New().String(),
		Username:       strings.TrimSpace(p.Username),
		Email:          normalizeEmail(p.Email),
		PasswordHash:   hash,
		Biography:      p.Biography,
		ProfilePicture: p.ProfilePicture,
		GenreInterests: p.GenreInterests,
		Major:          p.Major,
		Year:           p.Year,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// InitiateSignIn checks the password and, if it matches, issues a fresh
// single-use passcode and emails it to the account's address. Any previously
// issued passcode for the user is superseded.
func (s *AuthService) InitiateSignIn(ctx context.Context, identifier, password string) error {
	user, err := s.lookup(ctx, identifier)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	// Mismatch and malformed stored hash both read as bad credentials; the
	// caller learns nothing about which.
	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return ErrInvalidCredentials
	}

	code, err := cryptox.GeneratePasscode()
	if err != nil {
		return fmt.Errorf("failed to generate passcode: %w", err)
	}

	ttl := s.passcodeTTL()
	pc := domain.Passcode{
		Value:     code,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}

	// Persist before sending so a delivered code is always verifiable.
	if err := s.Store.Users().SetPendingPasscode(ctx, user.ID, pc); err != nil {
		return fmt.Errorf("failed to store passcode: %w", err)
	}

	validMinutes := int(ttl / time.Minute)
	if err := s.Mailer.SendPasscode(ctx, user.Email, code, validMinutes); err != nil {
		slogx.FromContext(ctx).Error("passcode delivery failed",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return ErrDeliveryFailed
	}
	return nil
}

// CompleteSignIn consumes a pending passcode and returns a signed session
// token. The passcode is cleared whether it matched by value and expired, or
// matched and succeeded; a wrong value leaves it pending.
func (s *AuthService) CompleteSignIn(ctx context.Context, identifier, passcode string) (token string, user domain.User, err error) {
	user, err = s.lookup(ctx, identifier)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.Passcode == nil {
		return "", domain.User{}, ErrNoPendingPasscode
	}
	if !cryptox.PasscodeEqual(passcode, user.Passcode.Value) {
		return "", domain.User{}, ErrInvalidCredentials
	}
	if user.Passcode.Expired(time.Now().UTC()) {
		if err := s.Store.Users().ClearPendingPasscode(ctx, user.ID); err != nil {
			return "", domain.User{}, fmt.Errorf("failed to clear passcode: %w", err)
		}
		return "", domain.User{}, ErrPasscodeExpired
	}

	// Single use: clear before issuing the token.
	if err := s.Store.Users().ClearPendingPasscode(ctx, user.ID); err != nil {
		return "", domain.User{}, fmt.Errorf("failed to clear passcode: %w", err)
	}

	claims := jwtx.NewSessionClaims(user.ID, user.Email, user.Username, s.Issuer, s.sessionTTL(), time.Now().UTC())
	token, err = s.Signer.Sign(claims)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, user, nil
}

func (s *AuthService) lookup(ctx context.Context, identifier string) (domain.User, error) {
	if s.LoginKey == LoginByUsername {
		return s.Store.Users().GetUserByUsername(ctx, strings.TrimSpace(identifier))
	}
	return s.Store.Users().GetUserByEmail(ctx, normalizeEmail(identifier))
}

func (s *AuthService) passcodeTTL() time.Duration {
	if s.PasscodeTTL != 0 {
		return s.PasscodeTTL
	}
	return DefaultPasscodeTTL
}

func (s *AuthService) sessionTTL() time.Duration {
	if s.SessionTTL != 0 {
		return s.SessionTTL
	}
	return jwtx.DefaultSessionTTL
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
