package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultBaseURL = "https://api.razorpay.com/v1"

type Client struct {
	baseURL   string
	keyID     string
	keySecret string
	http      *http.Client
}

func NewClient(keyID, keySecret string) *Client {
	return &Client{
		baseURL:   DefaultBaseURL,
		keyID:     keyID,
		keySecret: keySecret,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL exists for tests that point the client at a stub server.
func NewClientWithBaseURL(keyID, keySecret, baseURL string) *Client {
	c := NewClient(keyID, keySecret)
	c.baseURL = baseURL
	return c
}

// KeyID is the publishable key the browser widget needs to open checkout.
func (c *Client) KeyID() string {
	return c.keyID
}

// CreateOrder reserves an amount on the gateway and returns the order reference.
func (c *Client) CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error) {
	url := fmt.Sprintf("%s/orders", c.baseURL)

	payload := createOrderRequest{
		Amount:   input.Amount,
		Currency: input.Currency,
		Receipt:  input.Receipt,
		Notes:    input.Notes,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("razorpay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("razorpay rejected order (status %d): %s", resp.StatusCode, string(body))
	}

	var response orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode razorpay response: %w", err)
	}

	return &Order{
		ID:       response.ID,
		Amount:   response.Amount,
		Currency: response.Currency,
	}, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "VyaparifyCheckout/1.0")
}
