package notify

import (
	"fmt"

	"github.com/rs/zerolog/log"
	gomail "gopkg.in/gomail.v2"

	"github.com/RestoSuiteApp/resto-scheduler/internal/models"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer sends booking notification emails off the request path, in the
// same drop-on-overflow style as the audit dispatcher. A nil Mailer is a
// valid no-op for deployments without SMTP configured.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	queue  chan Message
}

func NewMailer(host string, port int, username, password, from string) *Mailer {
	if host == "" || from == "" {
		return nil
	}

	m := &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		queue:  make(chan Message, 100),
	}

	go m.worker()
	return m
}

func (m *Mailer) worker() {
	for msg := range m.queue {
		mail := gomail.NewMessage()
		mail.SetHeader("From", m.from)
		mail.SetHeader("To", msg.To)
		mail.SetHeader("Subject", msg.Subject)
		mail.SetBody("text/plain", msg.Body)

		if err := m.dialer.DialAndSend(mail); err != nil {
			log.Error().Err(err).Str("to", msg.To).Msg("mail send failed")
		}
	}
}

func (m *Mailer) Send(msg Message) {
	if m == nil || msg.To == "" {
		return
	}

	select {
	case m.queue <- msg:
	default:
		log.Warn().Str("to", msg.To).Msg("mail queue full, dropping message")
	}
}

// BookingConfirmed notifies the client that their table is reserved.
func (m *Mailer) BookingConfirmed(est *models.Establishment, b *models.Booking, clientEmail string) {
	m.Send(Message{
		To:      clientEmail,
		Subject: fmt.Sprintf("Réservation confirmée - %s", est.Name),
		Body: fmt.Sprintf(
			"Votre réservation chez %s est confirmée.\n\nDate : %s\nHeure : %s\nCouverts : %d\n",
			est.Name, b.Date, b.Time, b.PartySize,
		),
	})
}

// BookingCancelled notifies the client of a cancellation.
func (m *Mailer) BookingCancelled(est *models.Establishment, b *models.Booking, clientEmail string) {
	m.Send(Message{
		To:      clientEmail,
		Subject: fmt.Sprintf("Réservation annulée - %s", est.Name),
		Body: fmt.Sprintf(
			"Votre réservation chez %s du %s à %s a été annulée.\n",
			est.Name, b.Date, b.Time,
		),
	})
}
