package service

import (
	"context"
	"fmt"

	"launchpad-backend/internal/domain"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendExpiryReminder(ctx context.Context, email string, sub *domain.Subscription) error {
	subject := fmt.Sprintf("Your %s subscription expires soon", sub.Plan)
	body := fmt.Sprintf("Hello,\n\nYour %s subscription expires on %s. Renew it to keep launching projects and viewing analytics.\n\nBest regards,\nThe Launchpad Team",
		sub.Plan, sub.EndDate.Format("2006-01-02"))
	return s.send(email, subject, body)
}

func (s *emailService) SendJoinDecision(ctx context.Context, email, projectTitle, teamName string, accepted bool, reason string) error {
	verdict := "accepted"
	if !accepted {
		verdict = "rejected"
	}
	subject := fmt.Sprintf("Your request to join %s was %s", projectTitle, verdict)
	body := fmt.Sprintf("Hello,\n\nYour request to join the %q team on %s has been %s.", teamName, projectTitle, verdict)
	if reason != "" {
		body += fmt.Sprintf("\n\nNote from the project owner: %s", reason)
	}
	body += "\n\nBest regards,\nThe Launchpad Team"
	return s.send(email, subject, body)
}

func (s *emailService) SendDeclineNotification(ctx context.Context, email, projectTitle, feedback string) error {
	subject := fmt.Sprintf("Your project %s was declined", projectTitle)
	body := fmt.Sprintf("Hello,\n\nYour project %s was declined after review.\n\nAnalyst feedback: %s\n\nYou can address the feedback and resubmit at any time.\n\nBest regards,\nThe Launchpad Team",
		projectTitle, feedback)
	return s.send(email, subject, body)
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
