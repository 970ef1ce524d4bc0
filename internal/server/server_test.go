package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resumeforge/internal/config"
	"resumeforge/internal/errors"
	"resumeforge/internal/observability"
)

func newTestServer(t *testing.T, apiKeys []string, rateLimit *config.RateLimitConfig) (*Server, *http.ServeMux) {
	t.Helper()

	appCfg := &config.Config{}
	logger := errors.NewLogger(slog.LevelError)

	srv := NewServer(appCfg, ServerConfig{
		Host:           "127.0.0.1",
		Port:           "0",
		Version:        "test",
		APIKeys:        apiKeys,
		MaxRequestSize: 1 << 20,
		RateLimit:      rateLimit,
	}, logger)
	if srv.RateLimiter != nil {
		t.Cleanup(srv.RateLimiter.Close)
	}

	om, err := observability.NewManager(appCfg, "test")
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}

	return srv, srv.setupRoutes(om)
}

func TestAuthMiddleware(t *testing.T) {
	body := `{"fields":{"name":"Ada Lovelace"}}`

	tests := []struct {
		name       string
		apiKeys    []string
		headers    map[string]string
		wantStatus int
	}{
		{
			name:       "no keys configured skips auth",
			apiKeys:    nil,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing key rejected",
			apiKeys:    []string{"secret-key-123"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid X-API-Key accepted",
			apiKeys:    []string{"secret-key-123"},
			headers:    map[string]string{"X-API-Key": "secret-key-123"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "valid Bearer token accepted",
			apiKeys:    []string{"secret-key-123"},
			headers:    map[string]string{"Authorization": "Bearer secret-key-123"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown key rejected",
			apiKeys:    []string{"secret-key-123"},
			headers:    map[string]string{"X-API-Key": "wrong-key"},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mux := newTestServer(t, tt.apiKeys, nil)

			req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestRenderHandler(t *testing.T) {
	_, mux := newTestServer(t, nil, nil)

	payload := RenderRequest{}
	payload.Fields.Name = "Ada Lovelace"
	payload.Fields.JobRole = "Software Developer"
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/render", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp RenderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Template != "modern" {
		t.Errorf("Template = %q, want %q", resp.Template, "modern")
	}
	if !strings.Contains(resp.ResumeText, "Ada Lovelace") {
		t.Errorf("resume text missing name: %q", resp.ResumeText)
	}
}

func TestRenderHandlerRejectsBadJSON(t *testing.T) {
	_, mux := newTestServer(t, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestEnhanceHandlerRequiresContent(t *testing.T) {
	_, mux := newTestServer(t, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/enhance", strings.NewReader(`{"content":""}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHealthEndpoint(t *testing.T) {
	_, mux := newTestServer(t, []string{"secret-key-123"}, nil)

	// Health must be reachable without authentication.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", resp["status"])
	}
}

func TestRateLimiterAllow(t *testing.T) {
	limiter := NewRateLimiter(60, 2, errors.NewLogger(slog.LevelError))
	defer limiter.Close()

	if !limiter.Allow("client-a") {
		t.Error("first request should be allowed")
	}
	if !limiter.Allow("client-a") {
		t.Error("second request within burst should be allowed")
	}
	if limiter.Allow("client-a") {
		t.Error("third request should exceed the burst capacity")
	}

	// Separate keys get separate buckets.
	if !limiter.Allow("client-b") {
		t.Error("different key should have its own bucket")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	rl := &config.RateLimitConfig{
		Enabled:        true,
		RequestsPerMin: 60,
		BurstCapacity:  1,
	}
	_, mux := newTestServer(t, nil, rl)

	body := `{"jobDescription":"We need a Go developer with Kubernetes experience."}`
	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/keywords", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "203.0.113.7:1234"
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		return rec.Code
	}

	if got := send(); got != http.StatusOK {
		t.Fatalf("first request status = %d, want %d", got, http.StatusOK)
	}
	if got := send(); got != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want %d", got, http.StatusTooManyRequests)
	}
}

func TestGetRateLimitKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.4:5678"

	if got := getRateLimitKey(req, false); got != "ip:198.51.100.4" {
		t.Errorf("getRateLimitKey() = %q, want ip key", got)
	}

	req.Header.Set("X-API-Key", "abc123")
	if got := getRateLimitKey(req, true); got != "api:abc123" {
		t.Errorf("getRateLimitKey() = %q, want api key", got)
	}

	// Without an API key the by-api-key mode falls back to the IP.
	req.Header.Del("X-API-Key")
	if got := getRateLimitKey(req, true); got != "ip:198.51.100.4" {
		t.Errorf("getRateLimitKey() = %q, want ip fallback", got)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		remote  string
		headers map[string]string
		want    string
	}{
		{
			name:   "remote addr",
			remote: "192.0.2.1:9999",
			want:   "192.0.2.1",
		},
		{
			name:    "x-forwarded-for takes first valid ip",
			remote:  "192.0.2.1:9999",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.5, 192.0.2.1"},
			want:    "203.0.113.5",
		},
		{
			name:    "x-real-ip",
			remote:  "192.0.2.1:9999",
			headers: map[string]string{"X-Real-IP": "203.0.113.9"},
			want:    "203.0.113.9",
		},
		{
			name:    "invalid forwarded header ignored",
			remote:  "192.0.2.1:9999",
			headers: map[string]string{"X-Forwarded-For": "not-an-ip"},
			want:    "192.0.2.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := getClientIP(req); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMaskAPIKey(t *testing.T) {
	if got := maskAPIKey("short"); got != "****" {
		t.Errorf("maskAPIKey(short) = %q, want ****", got)
	}
	if got := maskAPIKey("abcdefgh12345678"); got != "abcdefgh****" {
		t.Errorf("maskAPIKey(long) = %q", got)
	}
}
