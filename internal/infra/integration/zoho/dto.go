package zoho

// LeadPayload is the flat JSON Zoho Flow expects from the funnel webhook.
type LeadPayload struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Source    string `json:"source"`
	Amount    int    `json:"amount"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
