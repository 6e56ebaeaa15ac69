// internal/email/mailer/password_reset.go
package mailer

import "github.com/meridia/identity/internal/email"

// PasswordResetData contains data for the password reset email template
type PasswordResetData struct {
	Fullname     string
	TempPassword string
}

// SendPasswordReset delivers a temporary password. The recipient is
// expected to change it on next login.
func SendPasswordReset(s *email.Service, to, fullname, tempPassword string) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     "Meridia",
		Subject:      "Your Meridia password has been reset",
		TemplateName: "password_reset",
		TemplateData: PasswordResetData{
			Fullname:     fullname,
			TempPassword: tempPassword,
		},
	}

	return s.SendEmail(emailData)
}
