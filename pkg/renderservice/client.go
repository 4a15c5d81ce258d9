// Package renderservice calls the external PDF rendering service with a
// filtered resume, a template id and rendering params, and returns the
// binary document.
package renderservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"resume-builder/internal/model"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient builds a client for the service at baseURL. An empty
// baseURL falls back to the default compose address.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "http://render-service:8000"
	}
	return &Client{BaseURL: baseURL, HTTP: &http.Client{Timeout: 60 * time.Second}}
}

// doPostWithRetry performs an HTTP POST to the given path with retry/backoff.
func (c *Client) doPostWithRetry(ctx context.Context, path string, body []byte) (*http.Response, error) {
	attempts := 3
	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.HTTP.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		// exponential backoff before retrying
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

// Generate posts the filtered resume and returns the rendered PDF bytes.
func (c *Client) Generate(ctx context.Context, templateID string, resume *model.Resume, params map[string]interface{}) ([]byte, error) {
	payload := map[string]interface{}{
		"template": templateID,
		"resume":   resume,
		"params":   params,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.doPostWithRetry(ctx, "/v1/render", body)
	if err != nil {
		return nil, fmt.Errorf("render service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("render service returned %d: %s", resp.StatusCode, string(msg))
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("render service: read body: %w", err)
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("render service returned an empty document")
	}
	return pdf, nil
}
