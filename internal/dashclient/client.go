// Package dashclient is a typed client for the dashboard JSON API.
package dashclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/okian/salesboard/internal/domain/types"
)

// Default client settings.
const (
	DefaultBaseURL    = "http://localhost:9080"
	DefaultTimeout    = 10 * time.Second
	DefaultCookieName = "salesboard_client"

	maxErrorBody = 64 << 10
)

// Client calls the dashboard API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	cookieName string
	darkScheme bool

	mu       sync.Mutex
	clientID string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds every request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithClientID sends id in the named cookie so theme preferences persist
// across invocations. Without it the client adopts the id the server issues.
func WithClientID(cookieName, id string) Option {
	return func(c *Client) {
		if cookieName != "" {
			c.cookieName = cookieName
		}
		c.clientID = id
	}
}

// WithPrefersDark reports a dark OS color scheme to the server.
func WithPrefersDark(dark bool) Option {
	return func(c *Client) {
		c.darkScheme = dark
	}
}

// New creates a client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    DefaultTimeout,
		cookieName: DefaultCookieName,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c
}

// KPIs fetches the headline cards.
func (c *Client) KPIs(ctx context.Context) ([]types.KPICard, error) {
	var out []types.KPICard
	if err := c.do(ctx, http.MethodGet, "/api/kpis", nil, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Series fetches the history of metric. An empty metric selects the default.
func (c *Client) Series(ctx context.Context, metric string) ([]types.SeriesPoint, error) {
	q := url.Values{}
	if metric != "" {
		q.Set("metric", metric)
	}
	var out []types.SeriesPoint
	if err := c.do(ctx, http.MethodGet, "/api/series", q, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Roster fetches the rows visible under status and names.
func (c *Client) Roster(ctx context.Context, status string, names []string) ([]types.RosterRow, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	for _, n := range names {
		q.Add("name", n)
	}
	var out []types.RosterRow
	if err := c.do(ctx, http.MethodGet, "/api/roster", q, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Theme fetches the active theme of this client.
func (c *Client) Theme(ctx context.Context) (types.ThemeState, error) {
	var out types.ThemeState
	if err := c.do(ctx, http.MethodGet, "/api/theme", nil, &out); err != nil {
		return out, err
	}
	return out, nil
}

// ToggleTheme flips the stored theme of this client. The server does not
// store toggles from unknown ids, so a client without one first reads the
// theme to be issued an id.
func (c *Client) ToggleTheme(ctx context.Context) (types.ThemeState, error) {
	var out types.ThemeState
	if c.ClientID() == "" {
		if _, err := c.Theme(ctx); err != nil {
			return out, err
		}
	}
	if err := c.do(ctx, http.MethodPost, "/api/theme/toggle", nil, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequest, err)
	}
	req.Header.Set("Accept", "application/json")
	if id := c.ClientID(); id != "" {
		req.AddCookie(&http.Cookie{Name: c.cookieName, Value: id})
	}
	if c.darkScheme {
		req.Header.Set("Sec-CH-Prefers-Color-Scheme", `"dark"`)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrRequest, method, path, err)
	}
	defer resp.Body.Close()
	c.adoptClientID(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var e struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &e) == nil {
			apiErr.Code, apiErr.Message = e.Code, e.Message
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	return nil
}

// ClientID returns the id sent as the preference cookie, either configured
// or adopted from the server. It is empty until one is known.
func (c *Client) ClientID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clientID
}

func (c *Client) adoptClientID(resp *http.Response) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.clientID != "" {
		return
	}
	for _, ck := range resp.Cookies() {
		if ck.Name == c.cookieName && ck.Value != "" {
			c.clientID = ck.Value
			return
		}
	}
}
