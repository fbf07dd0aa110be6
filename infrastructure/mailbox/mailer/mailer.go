package mailer

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sugarart/commerce-sync-api/internal/config"
	"gopkg.in/gomail.v2"
)

// Mailer envia os arquivos convertidos pelo relay da caixa de entrada.
type Mailer interface {
	SendWithAttachment(to, subject, body, filename string, data []byte) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg *config.Config) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(
			cfg.Mailbox.SMTPHost,
			cfg.Mailbox.SMTPPort,
			cfg.Mailbox.User,
			cfg.Mailbox.Password,
		),
		from: cfg.Mailbox.User,
	}
}

func (m *smtpMailer) SendWithAttachment(to, subject, body, filename string, data []byte) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	msg.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	}))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "erro ao enviar e-mail com anexo")
	}

	return nil
}
