package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/noah-isme/school-admission-api/pkg/config"
)

// Client delivers SMS messages through an HTTP provider endpoint.
type Client struct {
	baseURL  string
	apiKey   string
	senderID string
	http     *http.Client
}

// NewClient constructs an SMS client from configuration.
func NewClient(cfg config.SMSConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		senderID: cfg.SenderID,
		http:     &http.Client{Timeout: timeout},
	}
}

type sendRequest struct {
	To       string            `json:"to"`
	SenderID string            `json:"sender_id,omitempty"`
	Event    string            `json:"event"`
	Params   map[string]string `json:"params,omitempty"`
}

// Send posts a templated message for the given event to the provider.
// The provider resolves the event tag to the message template.
func (c *Client) Send(ctx context.Context, phone, event string, params map[string]string) error {
	if c.baseURL == "" {
		return fmt.Errorf("sms provider url not configured")
	}
	if phone == "" {
		return fmt.Errorf("recipient phone required")
	}

	payload, err := json.Marshal(sendRequest{To: phone, SenderID: c.senderID, Event: event, Params: params})
	if err != nil {
		return fmt.Errorf("marshal sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sms provider returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
