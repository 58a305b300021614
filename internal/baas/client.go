package baas

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/samidy/monosync/internal/logger"
)

// Collection names used by monosync on the record service.
const (
	UsersCollection           = "users"
	UserDataCollection        = "db_users"
	PublicPlaylistsCollection = "public_playlists"
)

// ClientConfig configures the record service client.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the record service REST API. It implements [RecordAPI],
// [AuthAPI] and [TokenVerifier]. A Client is safe for concurrent use; the
// retained bearer token is guarded separately from the resty client.
type Client struct {
	http   *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewClient builds a Client for the given endpoint. An empty base URL falls
// back to a local development instance, and a non-positive timeout to 15s.
func NewClient(cfg ClientConfig, log *logger.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8090"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Client{http: cli, logger: log}
}

// SetToken stores the bearer token attached to subsequent authenticated
// requests. Called after a successful sign-in or admin auth.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token returns the currently retained bearer token, or "".
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// BaseURL returns the configured service endpoint.
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// request returns a context-bound request with the bearer token attached
// when one is held.
func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
