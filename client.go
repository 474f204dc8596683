package yummly

import (
	"context"
	"time"

	"github.com/yummly/client-go/internal/api"
)

// Client talks to the Yummly recipe API.
//
// Timeout and retry configuration may be changed between calls with
// SetTimeout and SetRetries. Calls are synchronous request/response; the
// client is not safe for concurrent reconfiguration.
type Client struct {
	apiClient *api.Client
}

// New creates a client with the given application credentials.
func New(appID, appKey string, opts ...Option) (*Client, error) {
	if appID == "" || appKey == "" {
		return nil, ErrMissingCredentials
	}

	cfg := &clientConfig{
		baseURL: defaultBaseURL,
		timeout: defaultTimeout,
		retries: defaultRetries,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(api.Config{
		AppID:      appID,
		AppKey:     appKey,
		BaseURL:    cfg.baseURL,
		HTTPClient: cfg.httpClient,
		Timeout:    cfg.timeout,
		MaxRetries: cfg.retries,
		RetryDelay: cfg.retryDelay,
	})
	if err != nil {
		return nil, err
	}

	return &Client{apiClient: apiClient}, nil
}

// GetRecipe fetches full detail for a recipe by identifier.
// An unknown id surfaces as an APIError matching ErrRecipeNotFound; a request
// that times out on every configured attempt surfaces as a TimeoutError.
func (c *Client) GetRecipe(ctx context.Context, id string) (*Recipe, error) {
	if id == "" {
		return nil, ErrEmptyRecipeID
	}

	resp, err := c.apiClient.GetRecipe(ctx, id)
	if err != nil {
		return nil, wrapError(err)
	}
	return newRecipeFromResponse(resp), nil
}

// Search runs a recipe search for q with the given options. The returned
// criteria echo the parameters the backend applied, including terms split
// from q.
func (c *Client) Search(ctx context.Context, q string, opts ...SearchOption) (*SearchResult, error) {
	cfg := &searchConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	resp, err := c.apiClient.Search(ctx, cfg.params(q))
	if err != nil {
		return nil, wrapError(err)
	}
	return newSearchResultFromResponse(resp), nil
}

// Metadata fetches one of the fixed metadata dictionaries, e.g. cuisines or
// diets. Kinds outside MetadataKinds fail immediately with an
// UnknownMetadataError; no request is issued.
func (c *Client) Metadata(ctx context.Context, kind MetadataKind) ([]MetadataEntry, error) {
	if !kind.Recognized() {
		return nil, &UnknownMetadataError{Kind: string(kind)}
	}

	resp, err := c.apiClient.GetMetadata(ctx, string(kind))
	if err != nil {
		return nil, wrapError(err)
	}

	entries := make([]MetadataEntry, 0, len(resp))
	for _, e := range resp {
		entries = append(entries, newMetadataEntry(e))
	}
	return entries, nil
}

// SetTimeout sets the per-attempt request timeout for subsequent calls.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.apiClient.SetTimeout(timeout)
}

// Timeout returns the per-attempt request timeout.
func (c *Client) Timeout() time.Duration {
	return c.apiClient.Timeout()
}

// SetRetries sets the number of retries for timed-out requests.
func (c *Client) SetRetries(retries int) {
	c.apiClient.SetRetries(retries)
}

// Retries returns the configured retry count.
func (c *Client) Retries() int {
	return c.apiClient.Retries()
}

// FailedAttempts returns the number of retries consumed by the most recent
// call. The counter resets at the start of each call, so after a call that
// exhausts all retries it equals exactly the configured retry count.
func (c *Client) FailedAttempts() int {
	return c.apiClient.FailedAttempts()
}
