package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type confirmationData struct {
	Name      string
	Amount    int
	PaymentID string
}
