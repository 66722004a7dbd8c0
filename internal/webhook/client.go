// Package webhook implements the client-direct submission path: one POST
// of the lead payload to a third-party webhook receiver, authenticated
// with a static API key header.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Source tags every payload so the receiver can attribute the lead.
const Source = "real_estate_portal"

const (
	apiKeyHeader   = "x-api-key"
	requestTimeout = 10 * time.Second
)

// Lead is the field set the webhook receiver expects. Note the field
// renames relative to the inquiry record: contact becomes phone and
// preferred_location becomes city.
type Lead struct {
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	PropertyType      *string `json:"property_type"`
	BudgetRange       *string `json:"budget_range"`
	City              *string `json:"city"`
	Timeline          *string `json:"timeline"`
	Needs             string  `json:"needs"`
	AdditionalDetails *string `json:"additional_details"`
	Source            string  `json:"source"`
}

// Result is the webhook receiver's response body.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Client posts leads to the webhook receiver.
type Client interface {
	// Submit sends one lead. It returns an error for transport failures,
	// non-2xx statuses, and application-level rejection; the receiver's
	// message, when present, is carried in the error.
	Submit(ctx context.Context, lead Lead) (*Result, error)
}

type client struct {
	url    string
	apiKey string
	http   *http.Client
}

// NewClient creates a webhook client for the given endpoint and API key.
func NewClient(url, apiKey string) Client {
	return &client{
		url:    url,
		apiKey: apiKey,
		http: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (c *client) Submit(ctx context.Context, lead Lead) (*Result, error) {
	lead.Source = Source

	body, err := json.Marshal(lead)
	if err != nil {
		return nil, fmt.Errorf("failed to encode lead payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("webhook returned status %d with unreadable body", resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !result.Success {
		if result.Message != "" {
			return &result, fmt.Errorf("webhook rejected lead: %s", result.Message)
		}
		return &result, fmt.Errorf("webhook rejected lead with status %d", resp.StatusCode)
	}

	return &result, nil
}
