// Package delivery implements the delivery-channel collaborator as an HTTP
// client against an email relay endpoint.
package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"cognicare/ports"
)

// HTTPChannel posts delivery requests to a relay endpoint as JSON
type HTTPChannel struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPChannel creates an HTTP delivery channel
func NewHTTPChannel(endpoint, apiKey string) *HTTPChannel {
	return &HTTPChannel{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type relayResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Send posts the delivery request and reports the relay's verdict
func (c *HTTPChannel) Send(ctx context.Context, req ports.DeliveryRequest) (bool, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return false, fmt.Errorf("failed to encode delivery request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("failed to build delivery request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return false, fmt.Errorf("delivery request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read delivery response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, fmt.Errorf("delivery relay returned status %d: %s", resp.StatusCode, respBody)
	}

	var relay relayResponse
	if err := json.Unmarshal(respBody, &relay); err != nil {
		return false, fmt.Errorf("failed to decode delivery response: %w", err)
	}
	if !relay.Success {
		log.Printf("[delivery] relay declined message to %s: %s", req.Recipient, relay.Error)
	}
	return relay.Success, nil
}
