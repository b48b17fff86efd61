package mailer

import (
	"fmt"
	"net/http"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"golang.org/x/exp/slog"
)

// sendClient is the one call of the SendGrid client this package uses.
type sendClient interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

type SendGrid struct {
	client         sendClient
	senderEmail    string
	recipientEmail string
	logger         *slog.Logger
}

func NewSendGrid(apiKey, senderEmail, recipientEmail string, logger *slog.Logger) *SendGrid {
	return &SendGrid{
		client:         sendgrid.NewSendClient(apiKey),
		senderEmail:    senderEmail,
		recipientEmail: recipientEmail,
		logger:         logger,
	}
}

// Send delivers a plain-text message in a single synchronous call. Success
// means SendGrid accepted the message; any other status and any transport
// failure is an error. No retry happens here.
func (s *SendGrid) Send(subject, body string) error {
	message := mail.NewV3MailInit(
		mail.NewEmail("", s.senderEmail),
		subject,
		mail.NewEmail("", s.recipientEmail),
		mail.NewContent("text/plain", body),
	)

	return s.send(message, subject)
}

// SendHTML delivers an HTML message, optionally with a plain-text
// alternative part.
func (s *SendGrid) SendHTML(subject, htmlBody, plainTextBody string) error {
	// SendGrid wants text/plain before text/html.
	contents := []*mail.Content{}
	if plainTextBody != "" {
		contents = append(contents, mail.NewContent("text/plain", plainTextBody))
	}
	contents = append(contents, mail.NewContent("text/html", htmlBody))

	message := mail.NewV3MailInit(
		mail.NewEmail("", s.senderEmail),
		subject,
		mail.NewEmail("", s.recipientEmail),
		contents...,
	)

	return s.send(message, subject)
}

func (s *SendGrid) send(message *mail.SGMailV3, subject string) error {
	response, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode != http.StatusAccepted {
		return fmt.Errorf("email was not accepted, status code %d", response.StatusCode)
	}

	s.logger.Info("email sent", slog.String("to", s.recipientEmail), slog.String("subject", subject))
	return nil
}
