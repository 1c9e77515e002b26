package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"news-backend/internal/config"
)

// ErrEmptyText is returned when a proxy call is made without text.
var ErrEmptyText = errors.New("text is required")

// UpstreamError carries the status and error body of a failed AI API
// call so handlers can pass them through.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream api %d: %s", e.Status, e.Body)
}

type Client struct {
	BaseURL string
	APIKey  string
	Client  *http.Client

	speech *SpeechCache
}

func New(cfg config.AIConfig, speech *SpeechCache) *Client {
	return &Client{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Client:  &http.Client{Timeout: 60 * time.Second},
		speech:  speech,
	}
}

func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	resp, err := c.post(ctx, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}

// post sends a JSON request and returns the response with a 2xx status.
// Any other status is read and surfaced as an *UpstreamError.
func (c *Client) post(ctx context.Context, path string, body any) (*http.Response, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ai api request: %w", err)
	}

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(raw)}
	}

	return resp, nil
}
