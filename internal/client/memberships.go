package client

import (
	"context"

	"github.com/fivetwenty-io/dnsimple-client/internal/constants"
	"github.com/fivetwenty-io/dnsimple-client/internal/payload"
	"github.com/fivetwenty-io/dnsimple-client/internal/template"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

const membershipsPath = "domains/{domain}/memberships"

// ListMemberships implements dnsimple.MembershipsAPI.ListMemberships.
func (c *Client) ListMemberships(ctx context.Context, domain string) (*dnsimple.Response, error) {
	const action = "listing memberships"

	err := validate(action, requireDomain(domain))
	if err != nil {
		return nil, err
	}

	return c.execute(ctx, action, template.Get(membershipsPath, template.Segments{}.Str("domain", domain)))
}

// CreateMembership implements dnsimple.MembershipsAPI.CreateMembership.
func (c *Client) CreateMembership(ctx context.Context, domain, email string) (*dnsimple.Response, error) {
	const action = "creating membership"

	err := validate(action, requireDomain(domain), payload.RequireArgument("email", email))
	if err != nil {
		return nil, err
	}

	body, err := payload.New(constants.WrapperMembership).Required("email", email).Build()
	if err != nil {
		return nil, validate(action, err)
	}

	return c.execute(ctx, action, template.Post(membershipsPath, template.Segments{}.Str("domain", domain), body))
}

// DeleteMembership implements dnsimple.MembershipsAPI.DeleteMembership.
func (c *Client) DeleteMembership(ctx context.Context, domain, email string) (*dnsimple.Response, error) {
	const action = "deleting membership"

	err := validate(action, requireDomain(domain), payload.RequireArgument("email", email))
	if err != nil {
		return nil, err
	}

	segments := template.Segments{}.Str("domain", domain).Str("email", email)

	return c.execute(ctx, action, template.Delete("domains/{domain}/memberships/{email}", segments))
}
