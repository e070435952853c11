// internal/email/mailer/emergency_assigned.go
package mailer

import "github.com/pelycan/api/internal/email"

// EmergencyTemplateData contains data for the emergency assignment email
type EmergencyTemplateData struct {
	FirstName   string
	RequestType string
	Note        string
}

// SendEmergencyAssignedEmail tells a professional they were assigned an
// emergency request.
func SendEmergencyAssignedEmail(s *email.Service, to, firstName, requestType, note string) error {
	templateData := EmergencyTemplateData{
		FirstName:   firstName,
		RequestType: requestType,
		Note:        note,
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     "Pelycan",
		Subject:      "Une urgence vous a été assignée",
		TemplateName: "emergency_assigned",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
