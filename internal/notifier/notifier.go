// Package notifier is the feedback service's outbound client for the
// notification sink.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client posts notification messages to the sink's /notify endpoint.
// Delivery is best-effort and at-most-once: the caller decides whether a
// failure matters. The timeout bounds how long a hung sink can hold up a
// calling handler; the original had none.
type Client struct {
	url    string
	client *http.Client
}

// New creates a notification client targeting url.
func New(url string, timeout time.Duration) *Client {
	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type notifyPayload struct {
	Message string `json:"message"`
}

// Notify sends one message. A dial failure, timeout, or non-2xx response
// is returned as an error; nothing is retried.
func (c *Client) Notify(ctx context.Context, message string) error {
	body, err := json.Marshal(notifyPayload{Message: message})
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notification sink returned status %d", resp.StatusCode)
	}
	return nil
}
