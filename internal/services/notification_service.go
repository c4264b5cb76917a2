// internal/services/notification_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/sirupsen/logrus"

	"github.com/stamperia/stamperia-backend/internal/config"
	"github.com/stamperia/stamperia-backend/internal/models"
)

type NotificationService struct {
	config *config.Config
}

type EmailTemplate struct {
	Subject string
	Body    string
}

func NewNotificationService(config *config.Config) *NotificationService {
	return &NotificationService{config: config}
}

// SendDesignDecisionEmail tells the design owner about the review outcome.
// design must carry its User and Product relations.
func (s *NotificationService) SendDesignDecisionEmail(design *models.Design, review *models.Review) error {
	var tmpl EmailTemplate
	if review.Status == models.ReviewStatusApproved {
		tmpl = s.getEmailTemplate("design_approved")
	} else {
		tmpl = s.getEmailTemplate("design_rejected")
	}

	data := map[string]interface{}{
		"Name":        design.User.Name,
		"ProductName": design.Product.Name,
		"Color":       design.Color,
		"Comment":     review.Comment,
		"DesignURL":   fmt.Sprintf("%s/designs/%s", s.config.Frontend.BaseURL, design.ID),
	}

	body, err := s.renderTemplate(tmpl.Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendEmail(design.User.Email, tmpl.Subject, body)
}

func (s *NotificationService) sendEmail(to, subject, body string) error {
	if s.config.Email.SMTPHost == "" {
		// Email not configured, just log
		logrus.WithFields(logrus.Fields{"to": to, "subject": subject}).Info("email delivery skipped (SMTP not configured)")
		return nil
	}

	auth := smtp.PlainAuth("", s.config.Email.SMTPUsername, s.config.Email.SMTPPassword, s.config.Email.SMTPHost)

	msg := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s", to, subject, body))

	addr := fmt.Sprintf("%s:%s", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	return smtp.SendMail(addr, auth, s.config.Email.FromEmail, []string{to}, msg)
}

func (s *NotificationService) renderTemplate(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *NotificationService) getEmailTemplate(templateType string) EmailTemplate {
	templates := map[string]EmailTemplate{
		"design_approved": {
			Subject: "Your design was approved",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Good news, {{.Name}}!</h2>
	<p>Your design for "{{.ProductName}}" ({{.Color}}) was approved and is headed to production.</p>
	{{if .Comment}}<p>Reviewer note: {{.Comment}}</p>{{end}}
	<a href="{{.DesignURL}}">View your design</a>
	<p>Best regards,<br>The Stamperia Team</p>
</body>
</html>`,
		},
		"design_rejected": {
			Subject: "Your design needs changes",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Hello {{.Name}},</h2>
	<p>Your design for "{{.ProductName}}" ({{.Color}}) was not approved.</p>
	<p>Reviewer note: {{.Comment}}</p>
	<p>You can submit a new design at any time.</p>
	<a href="{{.DesignURL}}">View your design</a>
	<p>Best regards,<br>The Stamperia Team</p>
</body>
</html>`,
		},
	}

	if tmpl, exists := templates[templateType]; exists {
		return tmpl
	}

	return EmailTemplate{
		Subject: "Stamperia notification",
		Body:    `<html><body><p>{{.Comment}}</p></body></html>`,
	}
}
