// internal/email/mailer/password_reset.go
package mailer

import "github.com/dangerclosesec/motorlot/internal/email"

// ResetTemplateData contains data for the password reset email template
type ResetTemplateData struct {
	FullName  string
	ResetLink string
}

// SendPasswordResetEmail sends a password recovery link to the user
func SendPasswordResetEmail(s *email.Service, to, fullName, resetLink string) error {
	templateData := ResetTemplateData{
		FullName:  fullName,
		ResetLink: resetLink,
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     "Motorlot",
		Subject:      "Motorlot password recovery",
		TemplateName: "password_reset",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
