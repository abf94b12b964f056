package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"wheelio-backend/pkg/utils"

	"go.uber.org/zap"
)

// Mailer sends transactional HTML email over SMTP.
type Mailer struct {
	config      utils.EmailConfig
	frontendURL string
	log         *zap.Logger
}

func NewMailer(config utils.EmailConfig, frontendURL string, log *zap.Logger) *Mailer {
	return &Mailer{
		config:      config,
		frontendURL: frontendURL,
		log:         log.With(zap.String("component", "mailer")),
	}
}

const emailHeader = `
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<div style="text-align: center; margin-bottom: 30px; background-color: #f9f9f9; padding: 20px;">
			<h2 style="color: #1a73e8; margin: 0;">Wheelio</h2>
		</div>
`

const emailFooter = `
		<div style="text-align: center; margin-top: 20px; font-size: 12px; color: #666; border-top: 1px solid #eee; padding-top: 20px;">
			<p>This is an automated message, please do not reply to this email.</p>
			<p>© 2026 Wheelio. All rights reserved.</p>
		</div>
	</div>
</body>
</html>
`

func (m *Mailer) send(to []string, subject, body string) error {
	if m.config.From == "" || m.config.Password == "" || m.config.Host == "" || m.config.Port == 0 {
		return fmt.Errorf("email configuration not set")
	}

	headers := map[string]string{
		"From":         fmt.Sprintf("Wheelio <%s>", m.config.From),
		"To":           strings.Join(to, ","),
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + body

	auth := smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	if err := smtp.SendMail(addr, auth, m.config.From, to, []byte(message)); err != nil {
		m.log.Error("Failed to send email",
			zap.Strings("to", to),
			zap.String("subject", subject),
			zap.Error(err))
		return err
	}

	m.log.Info("Email sent", zap.Strings("to", to), zap.String("subject", subject))
	return nil
}

// SendBookingConfirmation notifies a customer their booking is confirmed.
func (m *Mailer) SendBookingConfirmation(toEmail, userName, vehicleName string, startDate, endDate time.Time, totalAmount float64) error {
	subject := "Booking Confirmed - Wheelio"
	body := fmt.Sprintf(emailHeader+`
				<div style="background-color: #f9f9f9; padding: 20px; border-radius: 5px;">
					<h1 style="color: #2c3e50; text-align: center;">Booking Confirmed</h1>
					<p>Hello %s,</p>
					<p>Your booking for <strong>%s</strong> is confirmed.</p>
					<p>Pickup: <strong>%s</strong><br>Return: <strong>%s</strong><br>Total: <strong>%.2f</strong></p>
					<div style="text-align: center; margin: 30px 0;">
						<a href="%s/bookings" style="background-color: #1a73e8; color: white; padding: 12px 25px; text-decoration: none; border-radius: 5px;">View Your Bookings</a>
					</div>
					<p>Best regards,<br>The Wheelio Team</p>
				</div>`+emailFooter,
		userName, vehicleName,
		startDate.Format("Jan 2, 2006 15:04"), endDate.Format("Jan 2, 2006 15:04"),
		totalAmount, m.frontendURL)

	return m.send([]string{toEmail}, subject, body)
}

// SendPasswordReset mails the reset link for a requested password reset.
func (m *Mailer) SendPasswordReset(toEmail, userName, token string) error {
	subject := "Password Reset Request - Wheelio"
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", m.frontendURL, token)
	body := fmt.Sprintf(emailHeader+`
				<div style="background-color: #f9f9f9; padding: 20px; border-radius: 5px;">
					<h1 style="color: #2c3e50; text-align: center;">Password Reset</h1>
					<p>Hello %s,</p>
					<p>We received a request to reset your password. The link below is valid for one hour.</p>
					<div style="text-align: center; margin: 30px 0;">
						<a href="%s" style="background-color: #1a73e8; color: white; padding: 12px 25px; text-decoration: none; border-radius: 5px;">Reset Password</a>
					</div>
					<p>If you did not request this, you can safely ignore this email.</p>
					<p>Best regards,<br>The Wheelio Team</p>
				</div>`+emailFooter,
		userName, resetLink)

	return m.send([]string{toEmail}, subject, body)
}
