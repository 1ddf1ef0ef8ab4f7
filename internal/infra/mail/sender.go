package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// OptOutAlertSender emails ops when a lead texts STOP. It is optional
// wiring: the usecase treats a nil sender as "alerts disabled".
type OptOutAlertSender struct {
	Host     string
	Port     int
	User     string
	Password string
	To       string
}

func NewOptOutAlertSender(host string, port int, user, password, to string) *OptOutAlertSender {
	return &OptOutAlertSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		To:       to,
	}
}

func (s *OptOutAlertSender) SendOptOutAlert(phone string, saleID *int64) error {
	body := fmt.Sprintf("Lead %s replied STOP and will no longer receive messages.", phone)
	if saleID != nil {
		body += fmt.Sprintf("\nSale record: %d", *saleID)
	} else {
		body += "\nNo matching sale record."
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.User)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("Lead opted out: %s", phone))
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send opt-out alert: %w", err)
	}

	return nil
}
