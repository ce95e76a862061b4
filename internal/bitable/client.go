// Package bitable is an HTTP client for a Feishu-style bitable table. It
// implements the reconcile.Gateway interface over the tenant-token flow,
// the records/search endpoint and the record mutation endpoints.
package bitable

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/singleflight"
)

// tokenEarlyRefresh renews the tenant token this long before its expiry.
const tokenEarlyRefresh = 5 * time.Minute

// ClientConfig holds the connection settings for one bitable table.
type ClientConfig struct {
	// Endpoint is the API base URL (e.g. "https://open.feishu.cn/open-apis").
	Endpoint string
	// AppID identifies the bot requesting tenant tokens.
	AppID string
	// AppSecret is the bot's secret for the token grant.
	AppSecret string
	// AppToken identifies the bitable app holding the table.
	AppToken string
	// TableID identifies the table inside the app.
	TableID string
	// ViewID selects the view records are searched in.
	ViewID string
	// TimestampAware additionally requests and parses the Updated At field.
	TimestampAware bool
}

// Client is a bitable API client with cached tenant-token auth. Safe for
// concurrent use.
type Client struct {
	cfg    ClientConfig
	http   *retryablehttp.Client
	logger *slog.Logger

	mu          sync.RWMutex
	token       string
	tokenExpiry time.Time
	group       singleflight.Group
}

// NewClient validates cfg and builds a client. A nil logger falls back to
// slog.Default().
func NewClient(cfg ClientConfig, logger *slog.Logger) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("bitable endpoint is required")
	}
	if cfg.AppID == "" {
		return nil, fmt.Errorf("bitable app ID is required")
	}
	if cfg.AppSecret == "" {
		return nil, fmt.Errorf("bitable app secret is required")
	}
	if cfg.AppToken == "" {
		return nil, fmt.Errorf("bitable app token is required")
	}
	if cfg.TableID == "" {
		return nil, fmt.Errorf("bitable table ID is required")
	}
	if cfg.ViewID == "" {
		return nil, fmt.Errorf("bitable view ID is required")
	}
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")

	if logger == nil {
		logger = slog.Default()
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.RetryWaitMin = 500 * time.Millisecond
	rc.RetryWaitMax = 5 * time.Second
	rc.HTTPClient.Timeout = 30 * time.Second
	rc.Logger = logger // *slog.Logger satisfies retryablehttp.LeveledLogger

	return &Client{cfg: cfg, http: rc, logger: logger}, nil
}

// APIError is a failed bitable API call: a non-2xx HTTP response or a
// response envelope carrying a non-zero code.
type APIError struct {
	// Op names the failed operation, e.g. "records/search".
	Op string
	// HTTPStatus is the response status code.
	HTTPStatus int
	// Code is the API envelope code, zero when the envelope was unreadable.
	Code int
	// Msg is the API's message, or the raw body when no envelope came back.
	Msg string
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("bitable %s: code %d: %s", e.Op, e.Code, e.Msg)
	}
	return fmt.Sprintf("bitable %s: status %d: %s", e.Op, e.HTTPStatus, e.Msg)
}

// accessToken returns a valid tenant token, requesting a fresh one when the
// cached token is missing or close to expiry. Concurrent callers share a
// single refresh via singleflight.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.RLock()
	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		token := c.token
		c.mu.RUnlock()
		return token, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.group.Do("token", func() (any, error) {
		// Double-check after acquiring the singleflight slot: another
		// caller may have refreshed while we waited.
		c.mu.RLock()
		if c.token != "" && time.Now().Before(c.tokenExpiry) {
			token := c.token
			c.mu.RUnlock()
			return token, nil
		}
		c.mu.RUnlock()

		return c.requestToken(ctx)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// requestToken performs the tenant token grant and caches the result.
func (c *Client) requestToken(ctx context.Context) (string, error) {
	body, err := json.Marshal(map[string]string{
		"app_id":     c.cfg.AppID,
		"app_secret": c.cfg.AppSecret,
	})
	if err != nil {
		return "", fmt.Errorf("encode token request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.Endpoint+"/auth/v3/tenant_access_token/internal", body)
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request tenant token: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read token response: %w", err)
	}
	parsed := gjson.ParseBytes(payload)
	if resp.StatusCode != http.StatusOK {
		return "", &APIError{Op: "token", HTTPStatus: resp.StatusCode, Code: int(parsed.Get("code").Int()), Msg: envelopeMsg(parsed, payload)}
	}
	if code := parsed.Get("code").Int(); code != 0 {
		return "", &APIError{Op: "token", HTTPStatus: resp.StatusCode, Code: int(code), Msg: parsed.Get("msg").String()}
	}

	token := parsed.Get("tenant_access_token").String()
	if token == "" {
		return "", fmt.Errorf("token response missing tenant_access_token")
	}
	expire := parsed.Get("expire").Int()
	if expire <= 0 {
		expire = 7200
	}

	c.mu.Lock()
	c.token = token
	c.tokenExpiry = time.Now().Add(time.Duration(expire)*time.Second - tokenEarlyRefresh)
	c.mu.Unlock()

	c.logger.Debug("tenant token refreshed", "expires_in", expire)
	return token, nil
}

// call performs one authenticated API request and returns the parsed body
// after checking both the HTTP status and the envelope code.
func (c *Client) call(ctx context.Context, op, method, path string, query url.Values, body any) (gjson.Result, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return gjson.Result{}, err
	}

	var raw []byte
	if body != nil {
		if raw, err = json.Marshal(body); err != nil {
			return gjson.Result{}, fmt.Errorf("%s: encode request: %w", op, err)
		}
	}

	u := c.cfg.Endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, u, raw)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%s: read response: %w", op, err)
	}
	parsed := gjson.ParseBytes(payload)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return gjson.Result{}, &APIError{Op: op, HTTPStatus: resp.StatusCode, Code: int(parsed.Get("code").Int()), Msg: envelopeMsg(parsed, payload)}
	}
	if code := parsed.Get("code").Int(); code != 0 {
		return gjson.Result{}, &APIError{Op: op, HTTPStatus: resp.StatusCode, Code: int(code), Msg: parsed.Get("msg").String()}
	}
	return parsed, nil
}

// envelopeMsg prefers the envelope's msg field, falling back to the raw
// body for non-JSON error pages.
func envelopeMsg(parsed gjson.Result, payload []byte) string {
	if msg := parsed.Get("msg").String(); msg != "" {
		return msg
	}
	return strings.TrimSpace(string(payload))
}
