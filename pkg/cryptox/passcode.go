package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// PasscodeBytes is the raw entropy behind a sign-in passcode. Three bytes
// encode to six lowercase hex characters, the size users are asked to retype
// from their inbox.
const PasscodeBytes = 3

// GeneratePasscode returns a fixed-length hex passcode from a
// cryptographically strong random source. Never derive passcodes from
// counters or timestamps.
func GeneratePasscode() (string, error) {
	buf := make([]byte, PasscodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate passcode: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// PasscodeEqual compares two passcode values in constant time. Hex passcodes
// are case-sensitive: the stored form is lowercase and must match exactly.
func PasscodeEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
