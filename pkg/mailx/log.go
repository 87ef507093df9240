package mailx

import (
	"context"
	"log/slog"
)

// LogMailer writes passcodes to the log instead of sending mail. Dev-only:
// it defeats the out-of-band property, so app wiring refuses it outside the
// dev environment.
type LogMailer struct {
	Logger *slog.Logger
}

func (m *LogMailer) SendPasscode(_ context.Context, to, passcode string, validMinutes int) error {
	logger := m.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("passcode issued (log mailer, dev only)",
		"to", to,
		"passcode", passcode,
		"valid_minutes", validMinutes,
	)
	return nil
}
