// internal/email/mailer/professional_approved.go
package mailer

import "github.com/pelycan/api/internal/email"

// ApprovalTemplateData contains data for the professional approval email
type ApprovalTemplateData struct {
	FirstName     string
	DashboardLink string
}

// SendProfessionalApprovedEmail notifies a professional that an admin
// activated their account.
func SendProfessionalApprovedEmail(s *email.Service, to, firstName, dashboardLink string) error {
	templateData := ApprovalTemplateData{
		FirstName:     firstName,
		DashboardLink: dashboardLink,
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     "Pelycan",
		Subject:      "Votre compte professionnel Pelycan est activé",
		TemplateName: "professional_approved",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
