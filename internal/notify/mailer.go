package notify

import (
	"fmt"
	"strings"

	"mobile-mechanic/internal/data/entity"
	"mobile-mechanic/pkg/utils"

	"gopkg.in/gomail.v2"
)

// Mailer sends a formatted message to the operator mailbox.
type Mailer interface {
	Send(subject, body string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewSMTPMailer(cfg utils.EmailConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
		to:     cfg.NotifyTo,
	}
}

func (m *SMTPMailer) Send(subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func formatBooking(b *entity.Booking) (subject, body string) {
	subject = fmt.Sprintf("New booking %s - %s on %s %s", b.ID, b.Service, b.PreferredDate, b.PreferredTime)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Booking %s\n\n", b.ID)
	fmt.Fprintf(&sb, "Customer:  %s (%s", b.Name, b.Phone)
	if b.Email != "" {
		fmt.Fprintf(&sb, ", %s", b.Email)
	}
	sb.WriteString(")\n")
	fmt.Fprintf(&sb, "Vehicle:   %s\n", b.Vehicle)
	fmt.Fprintf(&sb, "Service:   %s\n", b.Service)
	fmt.Fprintf(&sb, "Location:  %s\n", b.Location)
	fmt.Fprintf(&sb, "Scheduled: %s at %s\n", b.PreferredDate, b.PreferredTime)
	if b.Urgency != "" {
		fmt.Fprintf(&sb, "Urgency:   %s\n", b.Urgency)
	}
	if b.Description != "" {
		fmt.Fprintf(&sb, "Problem:   %s\n", b.Description)
	}
	fmt.Fprintf(&sb, "Deposit:   $%d (paid: %t)\n", b.DepositAmount, b.DepositPaid)

	return subject, sb.String()
}

func formatQuote(q *entity.Quote) (subject, body string) {
	subject = fmt.Sprintf("Quote request %s - %s", q.ID, q.Service)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Quote request %s\n\n", q.ID)
	fmt.Fprintf(&sb, "Customer:  %s (%s", q.Name, q.Phone)
	if q.Email != "" {
		fmt.Fprintf(&sb, ", %s", q.Email)
	}
	sb.WriteString(")\n")
	fmt.Fprintf(&sb, "Vehicle:   %s\n", q.Vehicle)
	fmt.Fprintf(&sb, "Service:   %s\n", q.Service)
	fmt.Fprintf(&sb, "Location:  %s\n", q.Location)
	if q.Urgency != "" {
		fmt.Fprintf(&sb, "Urgency:   %s\n", q.Urgency)
	}
	if q.Description != "" {
		fmt.Fprintf(&sb, "Problem:   %s\n", q.Description)
	}

	return subject, sb.String()
}
