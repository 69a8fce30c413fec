// Package dnsimpleclient provides the main entry point for creating DNSimple API clients
package dnsimpleclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/dnsimple-client/internal/client"
	"github.com/fivetwenty-io/dnsimple-client/internal/constants"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

// API roots accepted as Config.BaseURL.
const (
	ProductionBaseURL = constants.DefaultBaseURL
	SandboxBaseURL    = constants.SandboxBaseURL
)

// New creates a new DNSimple API client. An empty BaseURL selects the
// production endpoint; a scheme-less one is assumed to be https. The
// caller's config is left untouched.
func New(config *dnsimple.Config) (dnsimple.Client, error) {
	if config == nil {
		return nil, dnsimple.ErrConfigRequired
	}

	cfg := *config
	cfg.BaseURL = NormalizeBaseURL(cfg.BaseURL)

	client, err := client.New(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NormalizeBaseURL trims the trailing slash and adds a scheme when missing.
func NormalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return constants.DefaultBaseURL
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

// NewWithAccountKey creates a new client authenticated by account id and API key.
func NewWithAccountKey(baseURL, accountID, apiKey string) (dnsimple.Client, error) {
	return New(&dnsimple.Config{
		BaseURL:   baseURL,
		AccountID: accountID,
		APIKey:    apiKey,
	})
}

// NewWithPassword creates a new client using username/password authentication.
func NewWithPassword(baseURL, username, password string) (dnsimple.Client, error) {
	return New(&dnsimple.Config{
		BaseURL:  baseURL,
		Username: username,
		Password: password,
	})
}

// NewWithToken creates a new client using a domain API token.
func NewWithToken(baseURL, username, token string) (dnsimple.Client, error) {
	return New(&dnsimple.Config{
		BaseURL:  baseURL,
		Username: username,
		Token:    token,
	})
}
