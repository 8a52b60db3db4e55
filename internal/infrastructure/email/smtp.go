// Package email sends transactional mail for order lifecycle events.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/orderline-io/orderline/internal/shared/config"
)

// SMTPEmailService sends mail through a configured SMTP relay.
type SMTPEmailService struct {
	config config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(cfg config.EmailConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPEmailService{
		config: cfg,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendOrderConfirmationEmail(to, name, orderNo, total string) error {
	subject := fmt.Sprintf("Order %s received", orderNo)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Thanks for your order, %s!</h2>
			<p>We have received order <strong>%s</strong> for a total of %s.</p>
			<p>Please complete payment within the payment window, otherwise the order will be cancelled and any reserved stock released.</p>
		</body>
		</html>
	`, name, orderNo, total)

	plainBody := fmt.Sprintf(`
Thanks for your order, %s!

We have received order %s for a total of %s.

Please complete payment within the payment window, otherwise the order will be cancelled and any reserved stock released.
	`, name, orderNo, total)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendPaymentReceiptEmail(to, name, orderNo, total, transactionID string) error {
	subject := fmt.Sprintf("Payment received for order %s", orderNo)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Payment received</h2>
			<p>Hi %s, we have received your payment of %s for order <strong>%s</strong>.</p>
			<p>Transaction reference: %s</p>
			<p>We will let you know as soon as your order ships.</p>
		</body>
		</html>
	`, name, total, orderNo, transactionID)

	plainBody := fmt.Sprintf(`
Payment received

Hi %s, we have received your payment of %s for order %s.

Transaction reference: %s

We will let you know as soon as your order ships.
	`, name, total, orderNo, transactionID)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendShipmentEmail(to, name, orderNo, trackingNo string) error {
	subject := fmt.Sprintf("Order %s has shipped", orderNo)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your order is on its way</h2>
			<p>Hi %s, order <strong>%s</strong> has shipped.</p>
			<p>Tracking number: %s</p>
		</body>
		</html>
	`, name, orderNo, trackingNo)

	plainBody := fmt.Sprintf(`
Your order is on its way

Hi %s, order %s has shipped.

Tracking number: %s
	`, name, orderNo, trackingNo)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
