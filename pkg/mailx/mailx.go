// Package mailx delivers sign-in passcodes out of band. The passcode must
// never travel back to the caller in a response body; the mail channel is the
// only way it leaves the server.
package mailx

import "context"

// Mailer sends a sign-in passcode to a recipient address.
type Mailer interface {
	SendPasscode(ctx context.Context, to, passcode string, validMinutes int) error
}
