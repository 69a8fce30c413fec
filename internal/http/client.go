// Package http sends fully built API requests and returns status and body.
//
// Exactly one attempt is made per request. Connectivity failures surface as
// *dnsimple.TransportError; any HTTP status, including 4xx and 5xx, is a
// successful exchange at this layer and its body is returned for decoding.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/carlmjohnson/versioninfo"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fivetwenty-io/dnsimple-client/internal/constants"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

// Authenticator attaches credentials to an outgoing request.
type Authenticator interface {
	Apply(req *http.Request)
}

// Request is one API exchange relative to the client's base URL.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
	// Route is a low-cardinality label for metrics, usually the path
	// template the request was resolved from.
	Route string
}

// Response is the raw result of an exchange.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client executes requests against one API root.
type Client struct {
	baseURL       string
	authenticator Authenticator
	httpClient    *retryablehttp.Client
	logger        dnsimple.Logger
	debug         bool
	userAgent     string
	timeout       time.Duration
	registerer    prometheus.Registerer
	metrics       *metrics
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger dnsimple.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout bounds every exchange made by the client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithMetrics records request counts and latencies on registerer.
func WithMetrics(registerer prometheus.Registerer) Option {
	return func(c *Client) {
		c.registerer = registerer
	}
}

// WithHTTPClient replaces the underlying transport client. Tests use it to
// observe outgoing requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// DefaultUserAgent returns the User-Agent sent when none is configured.
func DefaultUserAgent() string {
	return constants.UserAgentPrefix + versioninfo.Short()
}

// NewClient creates a client for baseURL, which already includes the API
// version prefix. A nil authenticator sends requests unauthenticated.
func NewClient(baseURL string, authenticator Authenticator, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.CheckRetry = neverRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	client := &Client{
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		authenticator: authenticator,
		httpClient:    retryClient,
		userAgent:     DefaultUserAgent(),
		timeout:       constants.DefaultHTTPTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.httpClient.HTTPClient.Timeout = client.timeout

	if client.logger != nil {
		client.httpClient.Logger = retryablehttp.LeveledLogger(leveledLogger{inner: client.logger})
	}

	if client.registerer != nil {
		m, err := newMetrics(client.registerer)
		if err != nil && client.logger != nil {
			client.logger.Warn("request metrics disabled", map[string]interface{}{"error": err.Error()})
		}

		client.metrics = m
	}

	return client
}

// neverRetry reports every attempt as final. Context cancellation is still
// surfaced as the error of the exchange.
func neverRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return false, nil
}

// BaseURL returns the API root including the version prefix.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends req and returns the status and body.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL, err := c.buildURL(req)
	if err != nil {
		return nil, err
	}

	var rawBody interface{}

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		rawBody = data
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", constants.ContentTypeJSON)
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", constants.ContentTypeJSON)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.authenticator != nil {
		c.authenticator.Apply(httpReq.Request)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if httpResp != nil {
			_ = httpResp.Body.Close()
		}

		c.metrics.observe(req, 0, time.Since(start))

		return nil, &dnsimple.TransportError{Method: req.Method, URL: fullURL, Err: unwrapURLError(err)}
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		c.metrics.observe(req, 0, time.Since(start))

		return nil, &dnsimple.TransportError{Method: req.Method, URL: fullURL, Err: fmt.Errorf("reading response body: %w", err)}
	}

	elapsed := time.Since(start)
	c.metrics.observe(req, httpResp.StatusCode, elapsed)

	if c.debug && c.logger != nil {
		fields := map[string]interface{}{
			"method":   req.Method,
			"url":      fullURL,
			"status":   httpResp.StatusCode,
			"duration": elapsed.String(),
		}

		if httpResp.StatusCode >= http.StatusBadRequest {
			fields["body"] = truncate(string(body), constants.MaxErrorBodyLog)
		}

		c.logger.Debug("HTTP Response", fields)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

func (c *Client) buildURL(req *Request) (string, error) {
	parsed, err := url.Parse(c.baseURL + "/" + strings.TrimPrefix(req.Path, "/"))
	if err != nil {
		return "", fmt.Errorf("parsing request URL: %w", err)
	}

	if len(req.Query) > 0 {
		parsed.RawQuery = req.Query.Encode()
	}

	return parsed.String(), nil
}

// unwrapURLError strips the *url.Error wrapper, whose message repeats the
// method and URL already carried by TransportError.
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}

	return err
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}

	return s[:limit] + "..."
}

// leveledLogger routes retryablehttp's own log lines to the client logger.
// Per-attempt debug lines are dropped; the client logs each exchange itself.
type leveledLogger struct {
	inner dnsimple.Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.inner.Warn(msg, fieldsOf(keysAndValues))
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.inner.Warn(msg, fieldsOf(keysAndValues))
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.inner.Info(msg, fieldsOf(keysAndValues))
}

func (l leveledLogger) Debug(string, ...interface{}) {}

func fieldsOf(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}

		fields[key] = keysAndValues[i+1]
	}

	return fields
}
