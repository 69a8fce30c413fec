package client

import (
	"context"

	"github.com/fivetwenty-io/dnsimple-client/internal/constants"
	"github.com/fivetwenty-io/dnsimple-client/internal/payload"
	"github.com/fivetwenty-io/dnsimple-client/internal/template"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

// ListDomains implements dnsimple.DomainsAPI.ListDomains.
func (c *Client) ListDomains(ctx context.Context) (*dnsimple.Response, error) {
	return c.execute(ctx, "listing domains", template.Get("domains", nil))
}

// GetDomain implements dnsimple.DomainsAPI.GetDomain. The domain may be
// given by name or by numeric id.
func (c *Client) GetDomain(ctx context.Context, domain string) (*dnsimple.Response, error) {
	const action = "getting domain"

	err := validate(action, requireDomain(domain))
	if err != nil {
		return nil, err
	}

	return c.execute(ctx, action, template.Get("domains/{domain}", template.Segments{}.Str("domain", domain)))
}

// CreateDomain implements dnsimple.DomainsAPI.CreateDomain.
func (c *Client) CreateDomain(ctx context.Context, name string) (*dnsimple.Response, error) {
	const action = "creating domain"

	err := validate(action, payload.RequireArgument("name", name))
	if err != nil {
		return nil, err
	}

	body, err := payload.New(constants.WrapperDomain).Required("name", name).Build()
	if err != nil {
		return nil, validate(action, err)
	}

	return c.execute(ctx, action, template.Post("domains", nil, body))
}

// DeleteDomain implements dnsimple.DomainsAPI.DeleteDomain.
func (c *Client) DeleteDomain(ctx context.Context, domain string) (*dnsimple.Response, error) {
	const action = "deleting domain"

	err := validate(action, requireDomain(domain))
	if err != nil {
		return nil, err
	}

	return c.execute(ctx, action, template.Delete("domains/{domain}", template.Segments{}.Str("domain", domain)))
}
