package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Default configuration values.
const (
	DefaultBaseURL    = "https://api.yummly.com/v1"
	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = 250 * time.Millisecond
)

// Config configures the transport client.
type Config struct {
	AppID      string
	AppKey     string
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// Client is the HTTP transport for the Yummly API.
//
// Timeout and retry settings may be changed between calls; the client is not
// safe for concurrent reconfiguration.
type Client struct {
	baseURL    string
	appID      string
	appKey     string
	httpClient *http.Client
	timeout    time.Duration
	retry      RetryConfig

	// failedAttempts counts the retries consumed by the most recent call.
	// It is reset at the start of each call.
	failedAttempts int
}

// NewClient creates a transport client from the given config.
func NewClient(cfg Config) (*Client, error) {
	if cfg.AppID == "" {
		return nil, fmt.Errorf("application ID is required")
	}
	if cfg.AppKey == "" {
		return nil, fmt.Errorf("application key is required")
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		appID:      cfg.AppID,
		appKey:     cfg.AppKey,
		httpClient: cfg.HTTPClient,
		timeout:    cfg.Timeout,
		retry:      DefaultRetryConfig(),
	}

	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.httpClient == nil {
		// No http.Client timeout: the per-attempt deadline is driven by
		// c.timeout through the request context so it can change between calls.
		c.httpClient = &http.Client{}
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if cfg.MaxRetries > 0 {
		c.retry.MaxRetries = cfg.MaxRetries
	}
	if cfg.RetryDelay > 0 {
		c.retry.BaseDelay = cfg.RetryDelay
	}

	return c, nil
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// SetTimeout sets the per-attempt timeout for subsequent calls.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.timeout = timeout
}

// Timeout returns the per-attempt timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// SetRetries sets the number of retries for timed-out requests.
func (c *Client) SetRetries(retries int) {
	c.retry.MaxRetries = retries
}

// Retries returns the configured retry count.
func (c *Client) Retries() int {
	return c.retry.MaxRetries
}

// FailedAttempts returns the number of retries consumed by the most recent
// call. It resets to zero at the start of each call.
func (c *Client) FailedAttempts() int {
	return c.failedAttempts
}

// get issues a GET for path with query and decodes the JSON response into
// result.
func (c *Client) get(ctx context.Context, path string, query url.Values, result interface{}) error {
	body, err := c.getRaw(ctx, path, query)
	if err != nil {
		return err
	}
	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// getRaw issues a GET for path with query and returns the raw response body.
// Timed-out attempts are retried up to the configured count; each consumed
// retry increments the failure counter. Any other failure surfaces
// immediately without retry.
func (c *Client) getRaw(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL := c.requestURL(path, query)

	c.failedAttempts = 0
	for attempt := 0; ; attempt++ {
		body, err := c.attempt(ctx, reqURL)
		if err == nil {
			return body, nil
		}
		if !IsTimeout(err) {
			return nil, err
		}
		// The caller's own deadline or cancellation is not retryable.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if attempt >= c.retry.MaxRetries {
			return nil, &TimeoutError{
				Operation: "GET " + path,
				Timeout:   c.timeout,
				Attempts:  attempt + 1,
			}
		}
		c.failedAttempts++
		if werr := c.retry.Wait(ctx, attempt); werr != nil {
			return nil, werr
		}
	}
}

// attempt performs a single request under the per-attempt timeout.
func (c *Client) attempt(ctx context.Context, reqURL string) ([]byte, error) {
	attemptCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if IsTimeout(err) {
			return nil, err
		}
		return nil, &NetworkError{Err: err, URL: reqURL}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if IsTimeout(err) {
			return nil, err
		}
		return nil, &NetworkError{Err: err, URL: reqURL}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseErrorResponse(resp.StatusCode, body, reqURL)
	}

	return body, nil
}

// requestURL assembles the full request URL, carrying the application
// credentials as query parameters alongside the caller's parameters.
func (c *Client) requestURL(path string, query url.Values) string {
	v := url.Values{}
	for key, vals := range query {
		v[key] = vals
	}
	v.Set("_app_id", c.appID)
	v.Set("_app_key", c.appKey)
	return c.baseURL + path + "?" + v.Encode()
}

// parseErrorResponse maps a non-success response to an APIError. The backend
// sometimes returns a JSON object with a message and sometimes plain text.
func parseErrorResponse(statusCode int, body []byte, reqURL string) error {
	var errResp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	message := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Message != "" {
			message = errResp.Message
		} else if errResp.Error != "" {
			message = errResp.Error
		}
	}

	return &APIError{
		StatusCode: statusCode,
		Message:    message,
		URL:        reqURL,
	}
}
