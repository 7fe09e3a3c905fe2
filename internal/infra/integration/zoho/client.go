package zoho

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// FlowClient posts captured leads to a Zoho Flow webhook. Delivery is
// at-most-once: the caller logs failures and moves on.
type FlowClient struct {
	webhookURL string
	http       *http.Client
}

func NewFlowClient(webhookURL string) *FlowClient {
	return &FlowClient{
		webhookURL: webhookURL,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *FlowClient) Configured() bool {
	return c.webhookURL != ""
}

func (c *FlowClient) SendLead(ctx context.Context, payload LeadPayload) error {
	if c.webhookURL == "" {
		return fmt.Errorf("zoho flow webhook URL not configured")
	}

	if payload.Timestamp == "" {
		payload.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal lead payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("zoho flow request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("zoho flow rejected lead (status %d): %s", resp.StatusCode, string(body))
	}

	return nil
}
