package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendSessionInvite(toEmail, inviterName, puzzleTitle, token string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	clientURL   string
}

func NewEmailService(host string, port int, username, password, senderEmail, clientURL string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		clientURL:   clientURL,
	}
}

func (s *emailService) SendSessionInvite(toEmail, inviterName, puzzleTitle, token string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("%s invited you to solve a crossword", inviterName))

	inviteLink := fmt.Sprintf("%s/invite?token=%s", s.clientURL, token)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>You've been invited!</h2>
			<p>%s wants you to help solve <strong>%s</strong>.</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Join the session</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>If you didn't expect this, please ignore this email.</p>
		</div>
	`, inviterName, puzzleTitle, inviteLink, inviteLink)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send invite to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Invite sent to %s\n", toEmail)
	return nil
}
