// Package webhook posts lunch submissions to the spreadsheet-backed endpoint.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"training_briefing/internal/models"
)

const (
	contentTypeJSON = "application/json"
	defaultTimeout  = 10 * time.Second
	// bodyPreviewLimit caps how much of a rejection body is kept for diagnostics.
	bodyPreviewLimit = 512
)

// TransportError means the request never produced an HTTP response.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("post to %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServerRejection means the endpoint answered with a non-2xx status.
type ServerRejection struct {
	StatusCode int
	Body       string
}

func (e *ServerRejection) Error() string {
	return fmt.Sprintf("webhook responded with status %d", e.StatusCode)
}

// Client sends SubmissionRecords to a fixed endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient returns a client for endpoint. A nil httpClient gets one with a 10s timeout.
func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		endpoint:   strings.TrimSpace(endpoint),
		httpClient: httpClient,
	}
}

// Endpoint reports the configured URL.
func (c *Client) Endpoint() string { return c.endpoint }

// Send makes exactly one POST. Success is any 2xx; the response body is not inspected.
func (c *Client) Send(ctx context.Context, rec models.SubmissionRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", contentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Endpoint: c.endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, bodyPreviewLimit))
		return &ServerRejection{StatusCode: resp.StatusCode, Body: string(preview)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// IsTransport reports whether err came from a failed round trip.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsRejection reports whether err is a non-2xx answer.
func IsRejection(err error) bool {
	var sr *ServerRejection
	return errors.As(err, &sr)
}
