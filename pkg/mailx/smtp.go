package mailx

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// SMTPConfig holds the connection settings for the outbound mail account.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // sender address; defaults to Username when empty
}

// SMTPMailer sends passcodes through an authenticated SMTP submission
// endpoint (e.g. a gmail app password, matching the deployed setup).
type SMTPMailer struct {
	cfg    SMTPConfig
	client *mail.Client
}

// NewSMTPMailer builds the mailer and its client. The client dials lazily;
// connection errors surface on the first send.
func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("mailx: SMTP host is required")
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}

	opts := []mail.Option{
		mail.WithTLSPortPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	}
	if cfg.Port != 0 {
		opts = append(opts, mail.WithPort(cfg.Port))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mailx: failed to create SMTP client: %w", err)
	}

	return &SMTPMailer{cfg: cfg, client: client}, nil
}

// SendPasscode delivers the one-time passcode. A delivery failure must fail
// the whole sign-in initiation; an unreachable passcode is useless.
func (m *SMTPMailer) SendPasscode(ctx context.Context, to, passcode string, validMinutes int) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("mailx: invalid sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mailx: invalid recipient: %w", err)
	}

	msg.Subject("Your Sign-In OTP for BruinMovies")
	msg.SetBodyString(mail.TypeTextPlain,
		fmt.Sprintf("Your OTP is: %s. It will expire in %d minutes.", passcode, validMinutes))
	msg.AddAlternativeString(mail.TypeTextHTML,
		fmt.Sprintf("<p>Your OTP is: <strong>%s</strong>. It will expire in %d minutes.</p>", passcode, validMinutes))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mailx: failed to send passcode mail: %w", err)
	}
	return nil
}
