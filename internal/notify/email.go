package notify

import (
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"
)

// EmailSink forwards critical notifications over SMTP. Lower levels are
// ignored so routine fetch/export toasts never generate mail.
type EmailSink struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewEmailSink(host string, port int, user, pass, from, to string) *EmailSink {
	return &EmailSink{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
		to:     to,
	}
}

func (e *EmailSink) Notify(n Notification) error {
	if n.Level != LevelCritical {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", e.from)
	m.SetHeader("To", e.to)
	m.SetHeader("Subject", fmt.Sprintf("[PulseGuard] %s", n.Title))
	m.SetBody("text/plain", n.Message)

	if err := e.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("sending notification email: %w", err)
	}

	slog.Info("notification email sent", "id", n.ID, "to", e.to)
	return nil
}
