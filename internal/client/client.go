package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/dharmasatrya/flysas/pkg/logger"
	"github.com/dharmasatrya/flysas/pkg/metrics"
)

// Client performs GET requests against the offers API and decodes the JSON
// body. It never retries and does not look at the status code.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
	metrics    *metrics.Metrics
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		logger:     logger.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch sends GET baseURL+path with params and returns the decoded JSON as a
// tree of map[string]interface{}, []interface{} and scalars.
func (c *Client) Fetch(ctx context.Context, path string, params url.Values) (interface{}, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, NewRequestError(path, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream("transport_error", time.Since(start))
		return nil, NewRequestError(path, err)
	}
	defer res.Body.Close()

	c.logger.Debug("offers api responded", "path", path, "status", res.StatusCode)

	var data interface{}
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		c.metrics.ObserveUpstream("decode_error", time.Since(start))
		return nil, NewRequestError(path, err)
	}

	c.metrics.ObserveUpstream("ok", time.Since(start))
	return data, nil
}
