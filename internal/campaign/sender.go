package campaign

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/oarkflow/campaigner/internal/config"
)

// Sender submits one built message. Implementations own the transport
// for the duration of that single submission.
type Sender interface {
	Send(ctx context.Context, m *mail.Msg) error
}

// SMTPSender dials a fresh connection per message, authenticates,
// submits, and closes. No pooling: a stuck or poisoned connection can
// never affect more than one recipient.
type SMTPSender struct {
	smtp *config.SMTP
}

// NewSMTPSender creates a sender for the configured submission endpoint.
func NewSMTPSender(smtp *config.SMTP) *SMTPSender {
	return &SMTPSender{smtp: smtp}
}

// clientOptions builds the dial options for the configured endpoint.
// Port 465 connects with implicit TLS before authenticating; any other
// port connects in plaintext and upgrades via STARTTLS before
// authenticating. WithPort must come after the TLS policy option:
// WithTLSPortPolicy rewrites a port that still looks like the default,
// and the configured port wins regardless of its value.
func clientOptions(smtp *config.SMTP) []mail.Option {
	opts := []mail.Option{
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(smtp.User),
		mail.WithPassword(smtp.Password),
	}

	if smtp.Port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	}

	return append(opts, mail.WithPort(smtp.Port))
}

// Send delivers one message. The connection is closed on every return
// path.
func (s *SMTPSender) Send(ctx context.Context, m *mail.Msg) error {
	c, err := mail.NewClient(s.smtp.Server, clientOptions(s.smtp)...)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to submit message: %w", err)
	}
	return nil
}
