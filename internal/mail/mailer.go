// Package mail sends transactional HTML email over SMTP.
package mail

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"orders/internal/config"
)

// Mailer sends a composed message. Callers build the subject and HTML body,
// including any action URL with an embedded token.
type Mailer interface {
	Send(toName, toAddress, subject, htmlBody string) error
}

// SMTPMailer delivers mail through a configured SMTP server.
type SMTPMailer struct {
	cfg config.SMTP
}

// NewSMTPMailer creates a mailer with injected transport settings.
func NewSMTPMailer(cfg config.SMTP) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send delivers one message. No retries; a failed send surfaces immediately.
func (m *SMTPMailer) Send(toName, toAddress, subject, htmlBody string) error {
	cfg := m.cfg
	if cfg.Host == "" {
		return fmt.Errorf("mail: MAIL_HOST not configured")
	}

	from := fmt.Sprintf("%s <%s>", cfg.FromName, cfg.From)
	to := fmt.Sprintf("%s <%s>", toName, toAddress)
	raw := buildRaw(from, to, subject, htmlBody)

	addr := cfg.Host + ":" + cfg.Port
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	// Implicit TLS for port 465, STARTTLS for 587/25.
	if cfg.Port == "465" {
		return m.sendTLS(addr, auth, cfg.From, toAddress, raw, cfg.Host)
	}
	return smtp.SendMail(addr, auth, cfg.From, []string{toAddress}, raw)
}

func (m *SMTPMailer) sendTLS(addr string, auth smtp.Auth, from, to string, raw []byte, host string) error {
	tlsCfg := &tls.Config{ServerName: host}
	conn, err := tls.Dial("tcp", addr, tlsCfg)
	if err != nil {
		return fmt.Errorf("mail: TLS dial: %w", err)
	}
	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer client.Quit()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}
	if err := client.Mail(from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	defer w.Close()
	_, err = w.Write(raw)
	return err
}

func buildRaw(from, to, subject, htmlBody string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}
