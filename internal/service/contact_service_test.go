package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tartarus/api/internal/mail"
	"tartarus/api/internal/repository"
)

type fakeSender struct {
	sent    []mail.Outbound
	sendErr error
}

func (f *fakeSender) Send(_ context.Context, msg mail.Outbound) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

func contactInput() SubmitInput {
	return SubmitInput{
		Name:    "Alice",
		Email:   "alice@example.com",
		Subject: "Collab",
		Message: "I would like to talk about a project.",
	}
}

func TestContactService_Submit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO contacts`).
		WithArgs(pgxmock.AnyArg(), "Alice", "alice@example.com", "Collab",
			"I would like to talk about a project.", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	sender := &fakeSender{}
	svc := NewContactService(repository.NewContactRepository(mock), sender, testConfig(), zerolog.Nop())

	result, err := svc.Submit(context.Background(), contactInput())

	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Oracle: Collab", sender.sent[0].Subject)
	assert.Equal(t, "alice@example.com", sender.sent[0].ReplyToEmail)
	assert.Contains(t, sender.sent[0].Text, "I would like to talk about a project.")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A populated honeypot must look like success while touching nothing.
func TestContactService_Submit_HoneypotShortCircuits(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	sender := &fakeSender{}
	svc := NewContactService(repository.NewContactRepository(mock), sender, testConfig(), zerolog.Nop())

	input := contactInput()
	input.Honeypot = "http://spam.example"
	result, err := svc.Submit(context.Background(), input)

	require.NoError(t, err)
	assert.Empty(t, result.ID)
	assert.Empty(t, sender.sent, "no outbound mail")
	assert.NoError(t, mock.ExpectationsWereMet(), "no persistence")
}

func TestContactService_Submit_MailFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO contacts`).
		WithArgs(pgxmock.AnyArg(), "Alice", "alice@example.com", "Collab",
			"I would like to talk about a project.", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	sender := &fakeSender{sendErr: errors.New("smtp: connection timed out")}
	svc := NewContactService(repository.NewContactRepository(mock), sender, testConfig(), zerolog.Nop())

	_, err = svc.Submit(context.Background(), contactInput())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliver contact mail")
	assert.NoError(t, mock.ExpectationsWereMet())
}
