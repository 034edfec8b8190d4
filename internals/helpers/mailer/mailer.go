package mailer

import (
	"fmt"
	"log"
	"net/smtp"

	"ibt_backend/internals/configs"
)

// Message is a plain-text outbound mail.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Send delivers m over SMTP. Delivery is best effort: callers must never let
// a failed mail block the primary mutation. When SMTP_HOST is unset (local
// dev, tests) the mail is logged and skipped.
func Send(m Message) error {
	host := configs.GetEnv("SMTP_HOST")
	if host == "" {
		log.Printf("[MAIL] SMTP not configured, skipping mail to %s (%s)", m.To, m.Subject)
		return nil
	}

	port := configs.GetEnv("SMTP_PORT", "587")
	from := configs.GetEnv("SMTP_FROM")
	password := configs.GetEnv("SMTP_PASSWORD")

	auth := smtp.PlainAuth("", from, password, host)

	msg := "From: " + from + "\r\n" +
		"To: " + m.To + "\r\n" +
		"Subject: " + m.Subject + "\r\n\r\n" +
		m.Body

	addr := fmt.Sprintf("%s:%s", host, port)
	if err := smtp.SendMail(addr, auth, from, []string{m.To}, []byte(msg)); err != nil {
		log.Printf("[MAIL] send to %s failed: %v", m.To, err)
		return err
	}
	return nil
}

// SendAsync fires Send on a goroutine; errors are logged inside Send.
func SendAsync(m Message) {
	go func() { _ = Send(m) }()
}
