package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPConfig holds the outbound mail credentials supplied via the environment.
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
}

// Configured reports whether enough settings are present to send mail.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.User != ""
}

// SMTPNotifier delivers notifications as plain-text email over SMTP with
// PLAIN auth, the way the transactional contact-form mail is expected to go
// out. Message.Destination is the recipient address.
type SMTPNotifier struct {
	cfg SMTPConfig
}

// NewSMTPNotifier constructs an SMTP-backed notifier.
func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

// Send delivers the message. The context deadline is not propagated into the
// SMTP dial; callers treat delivery as fire-and-forget.
func (n *SMTPNotifier) Send(_ context.Context, message Message) error {
	if message.Destination == "" {
		return fmt.Errorf("notification destination is required")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", n.cfg.User)
	fmt.Fprintf(&b, "To: %s\r\n", message.Destination)
	fmt.Fprintf(&b, "Subject: %s\r\n", message.Subject)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(message.Body)

	addr := n.cfg.Host + ":" + n.cfg.Port
	auth := smtp.PlainAuth("", n.cfg.User, n.cfg.Pass, n.cfg.Host)
	if err := smtp.SendMail(addr, auth, n.cfg.User, []string{message.Destination}, []byte(b.String())); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
