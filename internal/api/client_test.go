package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := NewClient(Config{
		AppID:      "test-id",
		AppKey:     "test-key",
		BaseURL:    baseURL,
		RetryDelay: time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

func TestNewClient_RequiresAppID(t *testing.T) {
	_, err := NewClient(Config{
		AppID:  "",
		AppKey: "test-key",
	})
	if err == nil {
		t.Error("expected error for empty application ID")
	}
}

func TestNewClient_RequiresAppKey(t *testing.T) {
	_, err := NewClient(Config{
		AppID:  "test-id",
		AppKey: "",
	})
	if err == nil {
		t.Error("expected error for empty application key")
	}
}

func TestNewClient_DefaultValues(t *testing.T) {
	client, err := NewClient(Config{
		AppID:  "test-id",
		AppKey: "test-key",
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if client.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %s, want %s", client.baseURL, DefaultBaseURL)
	}
	if client.httpClient == nil {
		t.Error("httpClient is nil")
	}
	if client.timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", client.timeout, DefaultTimeout)
	}
	if client.retry.MaxRetries != DefaultMaxRetries {
		t.Errorf("MaxRetries = %d, want %d", client.retry.MaxRetries, DefaultMaxRetries)
	}
}

func TestNewClient_CustomValues(t *testing.T) {
	customHTTPClient := &http.Client{}

	client, err := NewClient(Config{
		AppID:      "test-id",
		AppKey:     "test-key",
		BaseURL:    "https://custom.example.com/",
		HTTPClient: customHTTPClient,
		Timeout:    5 * time.Second,
		MaxRetries: 7,
		RetryDelay: 10 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if client.baseURL != "https://custom.example.com" {
		t.Errorf("baseURL = %s, want trailing slash trimmed", client.baseURL)
	}
	if client.httpClient != customHTTPClient {
		t.Error("httpClient not set correctly")
	}
	if client.timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", client.timeout)
	}
	if client.retry.MaxRetries != 7 {
		t.Errorf("MaxRetries = %d, want 7", client.retry.MaxRetries)
	}
	if client.retry.BaseDelay != 10*time.Millisecond {
		t.Errorf("BaseDelay = %v, want 10ms", client.retry.BaseDelay)
	}
}

func TestClient_Get_SendsCredentialsAndHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("_app_id") != "test-id" {
			t.Errorf("_app_id = %s, want test-id", q.Get("_app_id"))
		}
		if q.Get("_app_key") != "test-key" {
			t.Errorf("_app_key = %s, want test-key", q.Get("_app_key"))
		}
		if q.Get("q") != "chicken" {
			t.Errorf("q = %s, want chicken", q.Get("q"))
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("Accept = %s, want application/json", r.Header.Get("Accept"))
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	var result struct {
		OK bool `json:"ok"`
	}
	query := url.Values{}
	query.Set("q", "chicken")
	if err := client.get(context.Background(), "/api/recipes", query, &result); err != nil {
		t.Fatalf("get() error = %v", err)
	}
	if !result.OK {
		t.Error("response not decoded")
	}
}

func TestClient_Get_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"no such recipe"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	err := client.get(context.Background(), "/api/recipe/nope", nil, nil)
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
	}
	if apiErr.Message != "no such recipe" {
		t.Errorf("Message = %q, want backend message", apiErr.Message)
	}
	if !errors.Is(err, ErrRecipeNotFound) {
		t.Error("errors.Is(err, ErrRecipeNotFound) = false")
	}
}

func TestClient_Get_NoRetryOnHTTPError(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	client.SetRetries(3)

	err := client.get(context.Background(), "/api/recipes", nil, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server hits = %d, want 1 (HTTP errors must not retry)", got)
	}
	if client.FailedAttempts() != 0 {
		t.Errorf("FailedAttempts() = %d, want 0", client.FailedAttempts())
	}
}

func TestClient_Get_TimeoutRetriesAndCounts(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	client.SetTimeout(20 * time.Millisecond)
	client.SetRetries(2)

	err := client.get(context.Background(), "/api/recipe/slow", nil, nil)
	if err == nil {
		t.Fatal("expected timeout error")
	}

	var timeoutErr *TimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("error = %T (%v), want *TimeoutError", err, err)
	}
	if timeoutErr.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", timeoutErr.Attempts)
	}
	if got := hits.Load(); got != 3 {
		t.Errorf("server hits = %d, want 3", got)
	}
	if client.FailedAttempts() != 2 {
		t.Errorf("FailedAttempts() = %d, want 2 (the retries consumed)", client.FailedAttempts())
	}
}

func TestClient_Get_SucceedsAfterTimeout(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			time.Sleep(200 * time.Millisecond)
			return
		}
		w.Write([]byte(`{"id":"ok"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	client.SetTimeout(20 * time.Millisecond)
	client.SetRetries(2)

	var result struct {
		ID string `json:"id"`
	}
	if err := client.get(context.Background(), "/api/recipe/flaky", nil, &result); err != nil {
		t.Fatalf("get() error = %v", err)
	}
	if result.ID != "ok" {
		t.Errorf("ID = %q, want ok", result.ID)
	}
	if client.FailedAttempts() != 1 {
		t.Errorf("FailedAttempts() = %d, want 1", client.FailedAttempts())
	}
}

func TestClient_Get_FailedAttemptsResetPerCall(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) <= 2 {
			time.Sleep(200 * time.Millisecond)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	client.SetTimeout(20 * time.Millisecond)
	client.SetRetries(1)

	if err := client.get(context.Background(), "/api/recipes", nil, nil); err == nil {
		t.Fatal("expected timeout error")
	}
	if client.FailedAttempts() != 1 {
		t.Fatalf("FailedAttempts() = %d, want 1", client.FailedAttempts())
	}

	client.SetTimeout(5 * time.Second)
	if err := client.get(context.Background(), "/api/recipes", nil, nil); err != nil {
		t.Fatalf("get() error = %v", err)
	}
	if client.FailedAttempts() != 0 {
		t.Errorf("FailedAttempts() = %d after clean call, want 0", client.FailedAttempts())
	}
}

func TestClient_Get_CallerCancellationNotRetried(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	client.SetRetries(5)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := client.get(ctx, "/api/recipes", nil, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want caller deadline", err)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server hits = %d, want 1 (caller deadline must not retry)", got)
	}
}

func TestClient_Get_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := newTestClient(t, server.URL)

	err := client.get(context.Background(), "/api/recipes", nil, nil)
	if err == nil {
		t.Fatal("expected error")
	}

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("error = %T (%v), want *NetworkError", err, err)
	}
	if netErr.Unwrap() == nil {
		t.Error("Unwrap() = nil")
	}
}

func TestClient_MutableConfiguration(t *testing.T) {
	client := newTestClient(t, "https://example.com")

	client.SetTimeout(42 * time.Second)
	if client.Timeout() != 42*time.Second {
		t.Errorf("Timeout() = %v, want 42s", client.Timeout())
	}

	client.SetRetries(9)
	if client.Retries() != 9 {
		t.Errorf("Retries() = %d, want 9", client.Retries())
	}
}

func TestParseErrorResponse_PlainText(t *testing.T) {
	err := parseErrorResponse(500, []byte("internal failure"), "https://example.com")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.Message != "internal failure" {
		t.Errorf("Message = %q, want plain body", apiErr.Message)
	}
}
