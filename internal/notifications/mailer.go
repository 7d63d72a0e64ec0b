package notifications

import (
	"context"
	"fmt"
	"sync"

	"wanderbook/pkg/config"
	"wanderbook/pkg/logger"

	"github.com/wneessen/go-mail"
)

// Mailer sends the confirmation email over SMTP. It is used directly by the
// smtp backend and by the notifier worker.
type Mailer struct {
	client *mail.Client
	from   string
	log    *logger.Logger
	mu     sync.Mutex
}

func NewMailer(cfg *config.Config) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithTimeout(cfg.NotificationTimeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.SMTPUsername != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUsername),
			mail.WithPassword(cfg.SMTPPassword),
		)
	}

	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return &Mailer{
		client: client,
		from:   cfg.SMTPFrom,
		log:    cfg.Log,
	}, nil
}

func (m *Mailer) NotifyBookingCreated(ctx context.Context, n BookingNotification) error {
	email, err := RenderConfirmation(n)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(email.To); err != nil {
		return fmt.Errorf("invalid recipient address %q: %w", email.To, err)
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(mail.TypeTextPlain, email.Body)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	m.log.Info("Confirmation email sent",
		"booking_id", n.BookingID,
		"email", email.To,
	)
	return nil
}

func (m *Mailer) Close() error { return nil }
