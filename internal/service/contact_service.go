package service

import (
	"context"
	"fmt"
	"html"

	"github.com/rs/zerolog"

	"tartarus/api/internal/config"
	"tartarus/api/internal/ids"
	"tartarus/api/internal/mail"
	"tartarus/api/internal/models"
	"tartarus/api/internal/repository"
)

type ContactService struct {
	contacts *repository.ContactRepository
	mailer   mail.Sender
	cfg      *config.AppConfig
	log      zerolog.Logger
}

func NewContactService(contacts *repository.ContactRepository, mailer mail.Sender, cfg *config.AppConfig, log zerolog.Logger) *ContactService {
	return &ContactService{
		contacts: contacts,
		mailer:   mailer,
		cfg:      cfg,
		log:      log,
	}
}

type SubmitInput struct {
	Name     string
	Email    string
	Subject  string
	Message  string
	Budget   *string
	Timeline *string
	// Honeypot carries the hidden form field. Humans leave it empty.
	Honeypot string
}

type SubmitResult struct {
	ID string
}

// Submit records a validated inquiry and delivers it to the studio inbox.
// A populated honeypot field short-circuits into a success response without
// persisting or sending anything.
func (s *ContactService) Submit(ctx context.Context, input SubmitInput) (SubmitResult, error) {
	if input.Honeypot != "" {
		s.log.Debug().Msg("contact honeypot tripped, dropping submission")
		return SubmitResult{}, nil
	}

	contact := models.Contact{
		ID:       ids.New(),
		Name:     input.Name,
		Email:    input.Email,
		Subject:  input.Subject,
		Message:  input.Message,
		Budget:   input.Budget,
		Timeline: input.Timeline,
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.cfg.Postgres.QueryTimeout)
	defer cancel()
	if err := s.contacts.Create(storeCtx, contact); err != nil {
		return SubmitResult{}, fmt.Errorf("persist contact: %w", err)
	}

	sendCtx, cancelSend := context.WithTimeout(ctx, s.cfg.SMTP.SendTimeout)
	defer cancelSend()
	if err := s.mailer.Send(sendCtx, formatOutbound(contact)); err != nil {
		return SubmitResult{}, fmt.Errorf("deliver contact mail: %w", err)
	}

	s.log.Info().Str("contact_id", contact.ID).Msg("contact submission delivered")
	return SubmitResult{ID: contact.ID}, nil
}

func formatOutbound(contact models.Contact) mail.Outbound {
	budget := orDash(contact.Budget)
	timeline := orDash(contact.Timeline)

	text := fmt.Sprintf("From: %s <%s>\nBudget: %s  Timeline: %s\n\n%s",
		contact.Name, contact.Email, budget, timeline, contact.Message)

	htmlBody := fmt.Sprintf(
		"<p><strong>From:</strong> %s &lt;%s&gt;</p>"+
			"<p><strong>Budget:</strong> %s &nbsp; | &nbsp; <strong>Timeline:</strong> %s</p>"+
			"<p style=\"white-space:pre-line\">%s</p>",
		html.EscapeString(contact.Name),
		html.EscapeString(contact.Email),
		html.EscapeString(budget),
		html.EscapeString(timeline),
		html.EscapeString(contact.Message),
	)

	return mail.Outbound{
		ReplyToName:  contact.Name,
		ReplyToEmail: contact.Email,
		Subject:      "Oracle: " + contact.Subject,
		Text:         text,
		HTML:         htmlBody,
	}
}

func orDash(value *string) string {
	if value == nil || *value == "" {
		return "-"
	}
	return *value
}
