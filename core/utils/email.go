package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"path/filepath"
	"strings"

	"rsvp-manager/core/config"
	"rsvp-manager/core/logger"
)

// TemplateData covers the fields used by the bundled email templates.
type TemplateData struct {
	Name     string
	OTPCode  string
	RSVPLink string
	Events   string
}

// SendTemplateEmailFromTemplatesDir renders templates/<templateFile> and sends
// it to the recipients over SMTP with STARTTLS-by-default ports.
func SendTemplateEmailFromTemplatesDir(to []string, subject string, templateFile string, data TemplateData) error {
	tmpl, err := template.ParseFiles(filepath.Join("templates", templateFile))
	if err != nil {
		logger.Error("Email:ParseTemplate:Error:", err, "template", templateFile)
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		logger.Error("Email:RenderTemplate:Error:", err, "template", templateFile)
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return sendMail(to, subject, body.String())
}

func sendMail(to []string, subject, htmlBody string) error {
	cfg := config.Get().SMTP

	msg := strings.Join([]string{
		"From: " + cfg.From,
		"To: " + strings.Join(to, ", "),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		htmlBody,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, cfg.From, to, []byte(msg)); err != nil {
		logger.Error("Email:Send:Error:", err, "to", to)
		return fmt.Errorf("failed to send email: %w", err)
	}
	logger.Info("Email sent", "to", to, "subject", subject)
	return nil
}
