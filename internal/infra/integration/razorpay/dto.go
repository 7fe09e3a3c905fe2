package razorpay

// createOrderRequest is the wire format of POST /v1/orders.
type createOrderRequest struct {
	Amount   int               `json:"amount"` // minor units (paise)
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type orderResponse struct {
	ID        string `json:"id"`
	Entity    string `json:"entity"`
	Amount    int    `json:"amount"`
	AmountDue int    `json:"amount_due"`
	Currency  string `json:"currency"`
	Receipt   string `json:"receipt"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

// CreateOrderInput carries what the checkout needs to open an order.
// Amount is already converted to minor units by the caller.
type CreateOrderInput struct {
	Amount   int
	Currency string
	Receipt  string
	Notes    map[string]string
}

// Order is the subset of the gateway response the client widget needs.
type Order struct {
	ID       string
	Amount   int
	Currency string
}
