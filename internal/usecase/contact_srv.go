package usecase

import (
	"context"
	"fmt"

	"garatge-booking/internal/dto/request"
	"garatge-booking/pkg/mailer"
	"garatge-booking/pkg/utils"

	"go.uber.org/zap"
)

type ContactService interface {
	Send(ctx context.Context, req *request.ContactRequest) error
}

type contactService struct {
	mail   mailer.Mailer
	config *utils.Config
	log    *zap.Logger
}

func NewContactService(mail mailer.Mailer, config *utils.Config, log *zap.Logger) ContactService {
	return &contactService{
		mail:   mail,
		config: config,
		log:    log.With(zap.String("service", "contact")),
	}
}

// Send relays a contact-form message to the workshop inbox. Unlike the
// booking notifications this send IS the operation, so a failure is an
// error to the caller.
func (s *contactService) Send(ctx context.Context, req *request.ContactRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Contact validation failed", zap.Any("errors", errs))
		return &ValidationError{Msg: "validation failed", Fields: errs}
	}

	subject := req.Subject
	if subject == "" {
		subject = fmt.Sprintf("Nou Missatge de Contacte de %s", req.Name)
	}

	phone := req.Phone
	if phone == "" {
		phone = "No especificat"
	}

	msg := mailer.Message{
		To:      s.config.Email.AdminEmail,
		Subject: subject,
		ReplyTo: req.Email,
		HTML: fmt.Sprintf(`<h1>Nou missatge des de la web</h1>
<p><strong>Nom:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Telèfon:</strong> %s</p>
<hr />
<h2>Missatge:</h2>
<p>%s</p>`, req.Name, req.Email, phone, req.Message),
	}

	if err := s.mail.Send(ctx, msg); err != nil {
		return &UpstreamError{Service: "email", Err: err}
	}

	s.log.Info("Contact message relayed", zap.String("from", req.Email))
	return nil
}
