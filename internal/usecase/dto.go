package usecase

type CreateLeadInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Source   string `json:"source,omitempty"`
}

// CustomerInfo mirrors what the checkout page sends. Older pages send "name",
// newer ones "fullName"; both are accepted.
type CustomerInfo struct {
	FullName string `json:"fullName,omitempty"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

func (c CustomerInfo) DisplayName() string {
	if c.FullName != "" {
		return c.FullName
	}
	return c.Name
}

type CreateOrderInput struct {
	Amount       int          `json:"amount"` // whole rupees
	CustomerInfo CustomerInfo `json:"customerInfo"`
}

type CreateOrderOutput struct {
	ID       string `json:"id"`
	Amount   int    `json:"amount"` // paise
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

type VerifyPaymentInput struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

type VerifyPaymentOutput struct {
	Verified  bool   `json:"verified"`
	PaymentID string `json:"paymentId,omitempty"`
}

type RecordSubmissionInput struct {
	FullName          string `json:"fullName"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Amount            int    `json:"amount,omitempty"`
	Status            string `json:"status,omitempty"`
	Source            string `json:"source,omitempty"`
	RazorpayOrderID   string `json:"razorpayOrderId,omitempty"`
	RazorpayPaymentID string `json:"razorpayPaymentId,omitempty"`
}
