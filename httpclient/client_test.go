package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/skillsenselab/ytcaptions/resilience"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New(Config{BaseURL: baseURL, Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c
}

func TestGet_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/watch" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("v"); got != "abc123" {
			t.Errorf("expected v=abc123, got %q", got)
		}
		w.Write([]byte("hello"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	resp, err := c.Get(context.Background(), "/watch", WithQueryParam("v", "abc123"))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !resp.IsSuccess() {
		t.Errorf("expected success, got %d", resp.StatusCode)
	}
	if string(resp.Body) != "hello" {
		t.Errorf("unexpected body %q", resp.Body)
	}
}

func TestGet_DefaultAndRequestHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "ytcaptions/test" {
			t.Errorf("expected default User-Agent, got %q", got)
		}
		if got := r.Header.Get("Accept-Language"); got != "en" {
			t.Errorf("expected request header, got %q", got)
		}
	}))
	defer srv.Close()

	c, err := New(Config{
		BaseURL: srv.URL,
		Headers: map[string]string{"User-Agent": "ytcaptions/test"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Get(context.Background(), "/", WithHeader("Accept-Language", "en")); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
}

func TestPost_JSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("expected application/json, got %q", got)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["videoId"] != "abc123" {
			t.Errorf("unexpected body %v", body)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Post(context.Background(), "/player", map[string]string{"videoId": "abc123"})
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}
}

func TestDo_ClassifiesStatusCodes(t *testing.T) {
	tests := []struct {
		status    int
		wantCode  ErrorCode
		retryable bool
	}{
		{http.StatusNotFound, ErrCodeNotFound, false},
		{http.StatusForbidden, ErrCodeAuth, false},
		{http.StatusTooManyRequests, ErrCodeRateLimit, true},
		{http.StatusBadRequest, ErrCodeValidation, false},
		{http.StatusBadGateway, ErrCodeServer, true},
	}

	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))

		c := newTestClient(t, srv.URL)
		resp, err := c.Get(context.Background(), "/")
		srv.Close()

		if err == nil {
			t.Errorf("status %d: expected error", tt.status)
			continue
		}
		var clientErr *Error
		if !errors.As(err, &clientErr) {
			t.Errorf("status %d: expected *Error, got %T", tt.status, err)
			continue
		}
		if clientErr.Code != tt.wantCode {
			t.Errorf("status %d: expected code %s, got %s", tt.status, tt.wantCode, clientErr.Code)
		}
		if clientErr.Retryable != tt.retryable {
			t.Errorf("status %d: expected retryable=%v", tt.status, tt.retryable)
		}
		if resp == nil || resp.StatusCode != tt.status {
			t.Errorf("status %d: expected response alongside error", tt.status)
		}
	}
}

func TestDo_ConnectionError(t *testing.T) {
	// Port 1 is essentially guaranteed to refuse connections.
	c := newTestClient(t, "http://127.0.0.1:1")
	_, err := c.Get(context.Background(), "/")
	if err == nil {
		t.Fatal("expected connection error")
	}
	var clientErr *Error
	if !errors.As(err, &clientErr) || clientErr.Code != ErrCodeConnection {
		t.Fatalf("expected connection error, got %v", err)
	}
}

func TestDo_RetryOnServerError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	retry := resilience.RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		RetryIf:        IsRetryable,
	}
	c, err := New(Config{BaseURL: srv.URL, Retry: &retry})
	if err != nil {
		t.Fatal(err)
	}

	resp, err := c.Get(context.Background(), "/")
	if err != nil {
		t.Fatalf("expected eventual success, got %v", err)
	}
	if string(resp.Body) != "ok" {
		t.Errorf("unexpected body %q", resp.Body)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Timeout != defaultTimeout {
		t.Errorf("expected default timeout, got %v", cfg.Timeout)
	}
}
