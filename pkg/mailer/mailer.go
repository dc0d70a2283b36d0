package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// Config holds the SMTP connection settings.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// Service sends plain-text transactional mail over SMTP. With no credentials
// configured the mail is logged instead, which keeps development setups
// working without a mail server.
type Service struct {
	config Config
	logger zerolog.Logger
}

// New constructs a mailer.
func New(config Config, logger zerolog.Logger) *Service {
	return &Service{
		config: config,
		logger: logger.With().Str("component", "mailer").Logger(),
	}
}

// Send delivers one message to one recipient.
func (s *Service) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.config.Host == "" || s.config.Username == "" {
		s.logger.Info().
			Str("to", to).
			Str("subject", subject).
			Msg("smtp not configured, mail logged instead of sent")
		return nil
	}

	message := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		s.config.FromName, s.config.FromEmail, to, subject, body)

	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	address := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	if err := smtp.SendMail(address, auth, s.config.FromEmail, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Debug().Str("to", to).Str("subject", subject).Msg("email sent")
	return nil
}
