package usecase_test

import (
	"context"
	"testing"

	"garatge-booking/internal/dto/request"
	"garatge-booking/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactRequest() *request.ContactRequest {
	return &request.ContactRequest{
		Name:    "Anna Roca",
		Email:   "anna@example.com",
		Message: "Quan obriu a l'agost?",
	}
}

func TestContactSend_RelaysToWorkshopInbox(t *testing.T) {
	mail := &fakeMailer{}
	svc := usecase.NewContactService(mail, testConfig(), testLogger())

	require.NoError(t, svc.Send(context.Background(), contactRequest()))

	require.Equal(t, 1, mail.count())
	msg := mail.sent[0]
	assert.Equal(t, "taller@garatgeestacio.test", msg.To)
	assert.Equal(t, "anna@example.com", msg.ReplyTo)
	assert.Contains(t, msg.Subject, "Anna Roca")
	assert.Contains(t, msg.HTML, "No especificat")
}

func TestContactSend_KeepsExplicitSubjectAndPhone(t *testing.T) {
	mail := &fakeMailer{}
	svc := usecase.NewContactService(mail, testConfig(), testLogger())

	req := contactRequest()
	req.Subject = "Pressupost embrague"
	req.Phone = "600111222"
	require.NoError(t, svc.Send(context.Background(), req))

	msg := mail.sent[0]
	assert.Equal(t, "Pressupost embrague", msg.Subject)
	assert.Contains(t, msg.HTML, "600111222")
}

func TestContactSend_ValidationFailure(t *testing.T) {
	mail := &fakeMailer{}
	svc := usecase.NewContactService(mail, testConfig(), testLogger())

	var verr *usecase.ValidationError
	err := svc.Send(context.Background(), &request.ContactRequest{Email: "bad"})
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, mail.count())
}

func TestContactSend_ProviderFailure(t *testing.T) {
	mail := &fakeMailer{sendErr: assert.AnError}
	svc := usecase.NewContactService(mail, testConfig(), testLogger())

	var uerr *usecase.UpstreamError
	assert.ErrorAs(t, svc.Send(context.Background(), contactRequest()), &uerr)
}
