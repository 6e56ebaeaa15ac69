// internal/email/mailer/signup_received.go
package mailer

import "github.com/meridia/identity/internal/email"

// PractitionerPendingData contains data for the practitioner signup acknowledgment
type PractitionerPendingData struct {
	Fullname string
}

// SendPractitionerPending tells a practitioner their signup awaits
// specialist verification.
func SendPractitionerPending(s *email.Service, to, fullname string) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     "Meridia",
		Subject:      "Your Meridia practitioner account is under review",
		TemplateName: "practitioner_pending",
		TemplateData: PractitionerPendingData{Fullname: fullname},
	}

	return s.SendEmail(emailData)
}

// OrganizationWelcomeData contains data for the organization signup acknowledgment
type OrganizationWelcomeData struct {
	AdminName        string
	OrganizationName string
}

// SendOrganizationWelcome tells the primary admin their organization
// awaits verification.
func SendOrganizationWelcome(s *email.Service, to, adminName, organizationName string) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     "Meridia",
		Subject:      "Your organization is being verified",
		TemplateName: "organization_welcome",
		TemplateData: OrganizationWelcomeData{
			AdminName:        adminName,
			OrganizationName: organizationName,
		},
	}

	return s.SendEmail(emailData)
}
