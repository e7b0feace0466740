package adapter

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/mail"
	"net/url"

	"github.com/MKhiriev/go-recipe-share/internal/config"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/dajohi/goemail"
)

const resetTokenSubject = "Password Reset Token"

// smtpMailer sends mail through an SMTPS server.
type smtpMailer struct {
	client      *goemail.SMTP
	mailName    string
	mailAddress string
	disabled    bool
	logger      *logger.Logger
}

// NewSMTPMailer returns a [Mailer] backed by goemail. Mail is disabled, and
// every send returns [ErrMailerDisabled], when host, user or password is
// missing.
func NewSMTPMailer(cfg config.Mail, logger *logger.Logger) (Mailer, error) {
	if cfg.Host == "" || cfg.User == "" || cfg.Password == "" {
		logger.Warn().Msg("smtp settings are incomplete, mail delivery is disabled")
		return &smtpMailer{disabled: true, logger: logger}, nil
	}

	u := &url.URL{
		Scheme: "smtps",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   cfg.Host,
	}

	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	address, err := mail.ParseAddress(from)
	if err != nil {
		return nil, fmt.Errorf("invalid mail sender address: %w", err)
	}

	tlsConfig := &tls.Config{InsecureSkipVerify: cfg.SkipVerify}

	client, err := goemail.NewSMTP(u.String(), tlsConfig)
	if err != nil {
		return nil, fmt.Errorf("error creating smtp client: %w", err)
	}

	logger.Info().Str("host", cfg.Host).Str("from", address.String()).Msg("smtp mailer configured")
	return &smtpMailer{
		client:      client,
		mailName:    address.Name,
		mailAddress: address.Address,
		logger:      logger,
	}, nil
}

// SendResetToken implements [Mailer].
func (m *smtpMailer) SendResetToken(ctx context.Context, email, token string) error {
	if m.disabled {
		return ErrMailerDisabled
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := resetTokenMessage(m.mailAddress, m.mailName, email, token)
	if err := m.client.Send(msg); err != nil {
		return fmt.Errorf("error sending reset token: %w", err)
	}

	return nil
}

// resetTokenMessage addresses the reset mail to the account owner.
func resetTokenMessage(fromAddress, fromName, email, token string) *goemail.Message {
	msg := goemail.NewMessage(fromAddress, resetTokenSubject, resetTokenBody(token))
	msg.SetName(fromName)
	msg.AddTo(email)
	return msg
}

func resetTokenBody(token string) string {
	return fmt.Sprintf("Your password reset token is: %s. Please enter this token in the password reset form.", token)
}
