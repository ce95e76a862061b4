package bitable

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testConfig(endpoint string) ClientConfig {
	return ClientConfig{
		Endpoint:  endpoint,
		AppID:     "cli_app",
		AppSecret: "secret",
		AppToken:  "bascn123",
		TableID:   "tblx",
		ViewID:    "veww",
	}
}

func TestNewClient_Validation(t *testing.T) {
	base := testConfig("https://example.test")
	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr string
	}{
		{"empty endpoint", func(c *ClientConfig) { c.Endpoint = "" }, "endpoint is required"},
		{"empty app ID", func(c *ClientConfig) { c.AppID = "" }, "app ID is required"},
		{"empty app secret", func(c *ClientConfig) { c.AppSecret = "" }, "app secret is required"},
		{"empty app token", func(c *ClientConfig) { c.AppToken = "" }, "app token is required"},
		{"empty table ID", func(c *ClientConfig) { c.TableID = "" }, "table ID is required"},
		{"empty view ID", func(c *ClientConfig) { c.ViewID = "" }, "view ID is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			_, err := NewClient(cfg, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want containing %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestNewClient_Success(t *testing.T) {
	client, err := NewClient(testConfig("https://example.test/"), nil)
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}
	if client == nil {
		t.Fatal("client should not be nil")
	}
	if client.cfg.Endpoint != "https://example.test" {
		t.Errorf("Endpoint = %q, want the trailing slash trimmed", client.cfg.Endpoint)
	}
}

func TestAccessToken_CachedAcrossCalls(t *testing.T) {
	tokenCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v3/tenant_access_token/internal" {
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		tokenCalls++
		fmt.Fprintf(w, `{"code":0,"msg":"ok","tenant_access_token":"t-%d","expire":7200}`, tokenCalls)
	}))
	defer srv.Close()

	client, err := NewClient(testConfig(srv.URL), nil)
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}

	ctx := context.Background()
	first, err := client.accessToken(ctx)
	if err != nil {
		t.Fatalf("accessToken() error: %v", err)
	}
	second, err := client.accessToken(ctx)
	if err != nil {
		t.Fatalf("accessToken() error: %v", err)
	}

	if first != "t-1" || second != "t-1" {
		t.Errorf("tokens = %q, %q, want the cached t-1 both times", first, second)
	}
	if tokenCalls != 1 {
		t.Errorf("token endpoint called %d times, want 1", tokenCalls)
	}
}

func TestAccessToken_EnvelopeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"code":99991663,"msg":"app secret invalid"}`)
	}))
	defer srv.Close()

	client, err := NewClient(testConfig(srv.URL), nil)
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}

	_, err = client.accessToken(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.Op != "token" || apiErr.Code != 99991663 {
		t.Errorf("APIError = %+v, want token op with the envelope code", apiErr)
	}
	if !strings.Contains(apiErr.Msg, "app secret invalid") {
		t.Errorf("Msg = %q, want the envelope message", apiErr.Msg)
	}
}

func TestAPIErrorString(t *testing.T) {
	e := &APIError{Op: "records/search", HTTPStatus: 200, Code: 91402, Msg: "NOTEXIST"}
	if got := e.Error(); got != "bitable records/search: code 91402: NOTEXIST" {
		t.Errorf("Error() = %q", got)
	}
	e = &APIError{Op: "token", HTTPStatus: 404, Msg: "not found"}
	if got := e.Error(); got != "bitable token: status 404: not found" {
		t.Errorf("Error() = %q", got)
	}
}
