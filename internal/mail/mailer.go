package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"tartarus/api/internal/config"
)

// Outbound is a fully formatted message ready for delivery to the studio inbox.
type Outbound struct {
	ReplyToName  string
	ReplyToEmail string
	Subject      string
	Text         string
	HTML         string
}

// Sender delivers outbound messages. The SMTP implementation is swapped for a
// fake in tests.
type Sender interface {
	Send(ctx context.Context, msg Outbound) error
}

type SMTPSender struct {
	client *gomail.Client
	cfg    config.SMTPConfig
}

func NewSMTPSender(cfg config.SMTPConfig) (*SMTPSender, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTimeout(cfg.SendTimeout),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &SMTPSender{client: client, cfg: cfg}, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg Outbound) error {
	m := gomail.NewMsg()
	if err := m.FromFormat("Tartarus Web", s.cfg.From); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := m.To(s.cfg.To); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	if err := m.ReplyToFormat(msg.ReplyToName, msg.ReplyToEmail); err != nil {
		return fmt.Errorf("set reply-to: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	}

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
