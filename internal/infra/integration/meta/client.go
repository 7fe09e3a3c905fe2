package meta

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const graphVersion = "v18.0"

var nonDigits = regexp.MustCompile(`[^0-9]`)

// Client relays conversion events to the Meta Conversions API.
type Client struct {
	pixelID     string
	accessToken string
	baseURL     string
	http        *http.Client
}

func NewClient(pixelID, accessToken string) *Client {
	return &Client{
		pixelID:     pixelID,
		accessToken: accessToken,
		baseURL:     "https://graph.facebook.com/" + graphVersion,
		http:        &http.Client{Timeout: 10 * time.Second},
	}
}

func NewClientWithBaseURL(pixelID, accessToken, baseURL string) *Client {
	c := NewClient(pixelID, accessToken)
	c.baseURL = baseURL
	return c
}

func (c *Client) Configured() bool {
	return c.pixelID != "" && c.accessToken != ""
}

// SendEvent hashes the user identifiers and posts the event. clientIP and
// userAgent come from the originating browser request.
func (c *Client) SendEvent(ctx context.Context, eventName string, eventTime int64, user UserData, custom map[string]interface{}, sourceURL, actionSource, clientIP, userAgent string) error {
	if !c.Configured() {
		return fmt.Errorf("meta conversions api not configured")
	}

	if eventTime == 0 {
		eventTime = time.Now().Unix()
	}
	if actionSource == "" {
		actionSource = "website"
	}

	userData := map[string]string{}
	if user.Email != "" {
		userData["em"] = HashIdentifier(strings.ToLower(strings.TrimSpace(user.Email)))
	}
	if user.Phone != "" {
		userData["ph"] = HashIdentifier(nonDigits.ReplaceAllString(user.Phone, ""))
	}
	if user.FirstName != "" {
		userData["fn"] = HashIdentifier(strings.ToLower(strings.TrimSpace(user.FirstName)))
	}
	if user.LastName != "" {
		userData["ln"] = HashIdentifier(strings.ToLower(strings.TrimSpace(user.LastName)))
	}
	if user.FBC != "" {
		userData["fbc"] = user.FBC
	}
	if user.FBP != "" {
		userData["fbp"] = user.FBP
	}
	if clientIP != "" {
		userData["client_ip_address"] = clientIP
	}
	if userAgent != "" {
		userData["client_user_agent"] = userAgent
	}

	payload := eventsRequest{
		Data: []ConversionEvent{{
			EventName:      eventName,
			EventTime:      eventTime,
			EventSourceURL: sourceURL,
			ActionSource:   actionSource,
			UserData:       userData,
			CustomData:     custom,
		}},
		AccessToken: c.accessToken,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	url := fmt.Sprintf("%s/%s/events", c.baseURL, c.pixelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("meta request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("meta rejected event (status %d): %s", resp.StatusCode, string(body))
	}

	return nil
}

// HashIdentifier normalizes nothing by itself; callers pass pre-normalized
// values. SHA-256 hex, as the Conversions API expects.
func HashIdentifier(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
