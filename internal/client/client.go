package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/dnsimple-client/internal/auth"
	"github.com/fivetwenty-io/dnsimple-client/internal/constants"
	"github.com/fivetwenty-io/dnsimple-client/internal/http"
	"github.com/fivetwenty-io/dnsimple-client/internal/payload"
	"github.com/fivetwenty-io/dnsimple-client/internal/template"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

// Static errors for err113 compliance.
var (
	ErrBaseURLRequired = errors.New("base URL is required")
)

// Transport sends one request and returns the raw exchange. *http.Client
// is the production implementation.
type Transport interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Client implements dnsimple.Client. Each operation validates its
// arguments, builds the payload, resolves the path template, sends the
// request and decodes the response. It holds no mutable state and is safe
// for concurrent use.
type Client struct {
	transport  Transport
	credential auth.Credential
	baseURL    string
	logger     dnsimple.Logger
}

var _ dnsimple.Client = (*Client)(nil)

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *dnsimple.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.MetricsRegisterer != nil {
		httpOpts = append(httpOpts, http.WithMetrics(config.MetricsRegisterer))
	}

	return httpOpts
}

// New creates a client from config. BaseURL must already be normalized;
// an empty APIVersion selects the default.
func New(config *dnsimple.Config) (*Client, error) {
	if config == nil {
		return nil, dnsimple.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}

	credential, err := auth.Select(config.AccountID, config.APIKey, config.Username, config.Password, config.Token)
	if err != nil {
		return nil, err
	}

	version := strings.Trim(config.APIVersion, "/")
	if version == "" {
		version = constants.DefaultAPIVersion
	}

	baseURL := strings.TrimSuffix(config.BaseURL, "/") + "/" + version
	httpClient := http.NewClient(baseURL, credential, createHTTPClientOptions(config)...)

	if config.Logger != nil {
		config.Logger.Debug("client created", map[string]interface{}{
			"base_url": baseURL,
			"auth":     credential.String(),
		})
	}

	return &Client{
		transport:  httpClient,
		credential: credential,
		baseURL:    baseURL,
		logger:     config.Logger,
	}, nil
}

// NewWithTransport creates a client that sends every request through
// transport.
func NewWithTransport(transport Transport, credential auth.Credential) *Client {
	return &Client{
		transport:  transport,
		credential: credential,
	}
}

// BaseURL returns the API root including the version prefix.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Scheme returns the active authentication scheme.
func (c *Client) Scheme() auth.Scheme {
	return c.credential.Scheme()
}

// execute runs one request spec through the transport and the decoder.
func (c *Client) execute(ctx context.Context, action string, spec *template.Spec) (*dnsimple.Response, error) {
	path, err := spec.Resolve()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	req := &http.Request{
		Method:  spec.Method,
		Path:    path,
		Headers: spec.Headers(),
		Route:   spec.Path,
	}

	if spec.HasBody() {
		req.Body = spec.Body
	}

	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	decoded, err := dnsimple.Decode(resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	if decoded.IsError() && c.logger != nil {
		c.logger.Debug("API error response", map[string]interface{}{
			"action":  action,
			"status":  decoded.StatusCode(),
			"message": decoded.Message(),
		})
	}

	return decoded, nil
}

// validate returns the first failing positional argument check.
func validate(action string, checks ...error) error {
	for _, err := range checks {
		if err != nil {
			return fmt.Errorf("%s: %w", action, err)
		}
	}

	return nil
}

func requireDomain(domain string) error {
	return payload.RequireArgument("domain", domain)
}
