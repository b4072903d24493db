package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendVerificationToken(toEmail, token string) error
	SendResetToken(toEmail, token string) error
	SendApplicationDecision(toEmail, companyName, status string, notes string) error
	SendEnrollmentInvoice(toEmail, companyName, paymentURL string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) send(m *gomail.Message, kind, toEmail string) error {
	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send %s to %s: %v\n", kind, toEmail, err)
		return err
	}
	fmt.Printf("[MAILER] %s sent to %s\n", kind, toEmail)
	return nil
}

func (s *emailService) SendVerificationToken(toEmail, token string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Verify your Frontera account")

	verifyLink := fmt.Sprintf("%s/verify-email?token=%s", s.frontendURL, token)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome to Frontera!</h2>
			<p>Confirm your email address to activate your account:</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Verify Email</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>This link will expire in 24 hours.</p>
			<p>If you didn't create an account, please ignore this email.</p>
		</div>
	`, verifyLink, verifyLink)

	m.SetBody("text/html", body)
	return s.send(m, "Verification", toEmail)
}

func (s *emailService) SendResetToken(toEmail, token string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Reset Your Password")

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Password Reset Request</h2>
			<p>You requested to reset your password. Click the button below to proceed:</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Reset Password</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>This link will expire in 1 hour.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, resetLink, resetLink)

	m.SetBody("text/html", body)
	return s.send(m, "Reset Token", toEmail)
}

func (s *emailService) SendApplicationDecision(toEmail, companyName, status string, notes string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)

	var subject, headline, detail string
	switch status {
	case "accepted":
		subject = "Your Frontera application has been accepted"
		headline = "Congratulations!"
		detail = fmt.Sprintf("We're excited to welcome %s into the Frontera coaching program. You'll receive enrollment details shortly.", companyName)
	case "waitlisted":
		subject = "Your Frontera application update"
		headline = "You're on the waitlist"
		detail = fmt.Sprintf("The current cohort is full, but %s is on our waitlist and we'll reach out as soon as a spot opens.", companyName)
	default:
		subject = "Your Frontera application update"
		headline = "Application decision"
		detail = fmt.Sprintf("After careful review, we won't be able to bring %s into the current program.", companyName)
	}

	notesBlock := ""
	if notes != "" {
		notesBlock = fmt.Sprintf("<p><em>Reviewer notes:</em> %s</p>", notes)
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>%s</h2>
			<p>%s</p>
			%s
			<p>— The Frontera Team</p>
		</div>
	`, headline, detail, notesBlock)

	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	return s.send(m, "Decision", toEmail)
}

func (s *emailService) SendEnrollmentInvoice(toEmail, companyName, paymentURL string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Complete your Frontera enrollment")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>One step left</h2>
			<p>To finalize %s's enrollment, complete the program payment:</p>
			<a href="%s" style="background-color: #4CAF50; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Pay Now</a>
			<p>Or copy this link:</p>
			<p>%s</p>
		</div>
	`, companyName, paymentURL, paymentURL)

	m.SetBody("text/html", body)
	return s.send(m, "Invoice", toEmail)
}
