package client

import (
	"context"

	"github.com/fivetwenty-io/dnsimple-client/internal/payload"
	"github.com/fivetwenty-io/dnsimple-client/internal/template"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

// GetExtendedAttributes implements dnsimple.AccountAPI.GetExtendedAttributes.
// It lists the registry-specific contact attributes a TLD requires.
func (c *Client) GetExtendedAttributes(ctx context.Context, tld string) (*dnsimple.Response, error) {
	const action = "getting extended attributes"

	err := validate(action, payload.RequireArgument("tld", tld))
	if err != nil {
		return nil, err
	}

	return c.execute(ctx, action, template.Get("extended_attributes/{tld}", template.Segments{}.Str("tld", tld)))
}

// ListStatements implements dnsimple.AccountAPI.ListStatements.
func (c *Client) ListStatements(ctx context.Context) (*dnsimple.Response, error) {
	return c.execute(ctx, "listing statements", template.Get("statements", nil))
}
