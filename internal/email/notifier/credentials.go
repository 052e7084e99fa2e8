// Package notifier sends the account emails the back office produces.
package notifier

import (
	"context"

	"github.com/agriformation/backoffice/internal/email"
)

// CredentialsTemplateData contains data for the volunteer credentials template
type CredentialsTemplateData struct {
	FullName          string
	Email             string
	TemporaryPassword string
	LoginURL          string
}

// CredentialsTemplate is the template the credentials email is rendered from.
const CredentialsTemplate = "volunteer_credentials"

// Sender is the part of email.Service the notifier uses.
type Sender interface {
	SendEmail(ctx context.Context, data email.EmailData) error
	Enabled() bool
}

// Notifier delivers volunteer credentials through a Sender.
type Notifier struct {
	svc      Sender
	loginURL string
}

func New(svc Sender, loginURL string) *Notifier {
	return &Notifier{svc: svc, loginURL: loginURL}
}

// Enabled reports whether emails actually leave the process.
func (n *Notifier) Enabled() bool {
	return n.svc.Enabled()
}

// SendVolunteerCredentials emails a newly accepted volunteer their temporary password.
func (n *Notifier) SendVolunteerCredentials(ctx context.Context, to, fullName, tempPassword string) error {
	return n.svc.SendEmail(ctx, email.EmailData{
		To:           to,
		Subject:      "Your Agriformation volunteer account",
		TemplateName: CredentialsTemplate,
		TemplateData: CredentialsTemplateData{
			FullName:          fullName,
			Email:             to,
			TemporaryPassword: tempPassword,
			LoginURL:          n.loginURL,
		},
	})
}
