package cryptox

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	require.NoError(t, VerifyPassword("correct horse battery staple", hash))
	require.Error(t, VerifyPassword("wrong password", hash))
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same input")
	require.NoError(t, err)
	h2, err := HashPassword("same input")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"not a hash",
		"$argon2i$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaA",
	}
	for _, c := range cases {
		require.Error(t, VerifyPassword("pw", c), "hash: %q", c)
	}
}

func TestGeneratePasscode(t *testing.T) {
	t.Parallel()

	code, err := GeneratePasscode()
	require.NoError(t, err)
	require.Len(t, code, PasscodeBytes*2)

	_, err = hex.DecodeString(code)
	require.NoError(t, err, "passcode must be valid hex")

	other, err := GeneratePasscode()
	require.NoError(t, err)
	require.NotEqual(t, code, other, "two passcodes should not collide")
}

func TestPasscodeEqual(t *testing.T) {
	t.Parallel()

	require.True(t, PasscodeEqual("a1b2c3", "a1b2c3"))
	require.False(t, PasscodeEqual("a1b2c3", "A1B2C3"), "hex comparison is case-sensitive")
	require.False(t, PasscodeEqual("a1b2c3", "a1b2c4"))
	require.False(t, PasscodeEqual("a1b2c3", "a1b2c3ff"))
}
