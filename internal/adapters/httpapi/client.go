package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dolarame/ativos/internal/core/domain"
)

// DefaultBaseURL is the address of a locally running ativos service
const DefaultBaseURL = "http://localhost:3000"

const (
	assetsPath = "/ativos"

	// maxErrorBody bounds how much of an error response becomes the message
	maxErrorBody = 64 << 10
)

// Client implements ports.AssetGateway over the REST service
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for baseURL. A zero timeout means requests
// never time out on their own; cancel the context instead.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// WithHTTPClient replaces the underlying http.Client
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

// BaseURL returns the service address requests are sent to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches every ativo
func (c *Client) List(ctx context.Context) ([]domain.Asset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+assetsPath, nil)
	if err != nil {
		return nil, &domain.RequestError{Op: "list", Err: fmt.Errorf("failed to create request: %w", err)}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.RequestError{Op: "list", Err: err}
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, responseError("list", resp)
	}

	var assets []domain.Asset
	if err := json.NewDecoder(resp.Body).Decode(&assets); err != nil {
		return nil, &domain.RequestError{
			Op:         "list",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to decode response: %w", err),
		}
	}
	if assets == nil {
		assets = []domain.Asset{}
	}

	return assets, nil
}

// Create registers a new ativo. Any 2xx status is success and the response
// body is ignored.
func (c *Client) Create(ctx context.Context, asset domain.Asset) error {
	body, err := json.Marshal(asset)
	if err != nil {
		return &domain.RequestError{Op: "create", Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+assetsPath, bytes.NewReader(body))
	if err != nil {
		return &domain.RequestError{Op: "create", Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.RequestError{Op: "create", Err: err}
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return responseError("create", resp)
	}

	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// responseError turns a non-2xx response into a RequestError whose message is
// the response body text, or the status text when the body is empty.
func responseError(op string, resp *http.Response) *domain.RequestError {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(data))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &domain.RequestError{
		Op:         op,
		StatusCode: resp.StatusCode,
		Message:    msg,
		Err:        fmt.Errorf("%s returned status %d", op, resp.StatusCode),
	}
}
