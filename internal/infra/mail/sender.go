package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

const confirmationTemplate = `<html>
<body style="font-family: Arial, sans-serif; color: #1f2937;">
  <h2>Payment received. Welcome aboard, {{.Name}}!</h2>
  <p>We have received your payment of <strong>₹{{.Amount}}</strong> for the
  Vyaparify Premium Annual plan.</p>
  <p>Payment reference: <code>{{.PaymentID}}</code></p>
  <p>Our onboarding team will reach out within one business day.</p>
  <p>Team Vyaparify</p>
</body>
</html>`

var confirmationTmpl = template.Must(template.New("confirmation").Parse(confirmationTemplate))

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendPaymentConfirmation emails the buyer after a verified payment.
func (s *EmailSender) SendPaymentConfirmation(to, name string, amount int, paymentID string) error {
	var body bytes.Buffer
	data := confirmationData{Name: name, Amount: amount, PaymentID: paymentID}
	if err := confirmationTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render confirmation email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Payment confirmed, welcome to Vyaparify, %s!", name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	return nil
}
