package client

import (
	"context"

	"github.com/fivetwenty-io/dnsimple-client/internal/template"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

const whoisPrivacyPath = "domains/{domain}/whois_privacy"

// EnableWhoisPrivacy implements dnsimple.WhoisPrivacyAPI.EnableWhoisPrivacy.
func (c *Client) EnableWhoisPrivacy(ctx context.Context, domain string) (*dnsimple.Response, error) {
	const action = "enabling whois privacy"

	err := validate(action, requireDomain(domain))
	if err != nil {
		return nil, err
	}

	return c.execute(ctx, action, template.Post(whoisPrivacyPath, template.Segments{}.Str("domain", domain), nil))
}

// DisableWhoisPrivacy implements dnsimple.WhoisPrivacyAPI.DisableWhoisPrivacy.
func (c *Client) DisableWhoisPrivacy(ctx context.Context, domain string) (*dnsimple.Response, error) {
	const action = "disabling whois privacy"

	err := validate(action, requireDomain(domain))
	if err != nil {
		return nil, err
	}

	return c.execute(ctx, action, template.Delete(whoisPrivacyPath, template.Segments{}.Str("domain", domain)))
}
