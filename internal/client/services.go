package client

import (
	"context"

	"github.com/fivetwenty-io/dnsimple-client/internal/constants"
	"github.com/fivetwenty-io/dnsimple-client/internal/payload"
	"github.com/fivetwenty-io/dnsimple-client/internal/template"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

const (
	appliedServicesPath = "domains/{domain}/applied_services"
	appliedServicePath  = "domains/{domain}/applied_services/{id}"
)

// ListServices implements dnsimple.ServicesAPI.ListServices.
func (c *Client) ListServices(ctx context.Context) (*dnsimple.Response, error) {
	return c.execute(ctx, "listing services", template.Get("services", nil))
}

// GetService implements dnsimple.ServicesAPI.GetService.
func (c *Client) GetService(ctx context.Context, id int) (*dnsimple.Response, error) {
	return c.execute(ctx, "getting service", template.Get("services/{id}", template.Segments{}.Int("id", id)))
}

// ListAppliedServices implements dnsimple.ServicesAPI.ListAppliedServices.
func (c *Client) ListAppliedServices(ctx context.Context, domain string) (*dnsimple.Response, error) {
	const action = "listing applied services"

	err := validate(action, requireDomain(domain))
	if err != nil {
		return nil, err
	}

	return c.execute(ctx, action, template.Get(appliedServicesPath, template.Segments{}.Str("domain", domain)))
}

// ListAvailableServices implements dnsimple.ServicesAPI.ListAvailableServices.
func (c *Client) ListAvailableServices(ctx context.Context, domain string) (*dnsimple.Response, error) {
	const action = "listing available services"

	err := validate(action, requireDomain(domain))
	if err != nil {
		return nil, err
	}

	return c.execute(ctx, action, template.Get("domains/{domain}/available_services", template.Segments{}.Str("domain", domain)))
}

// ApplyService implements dnsimple.ServicesAPI.ApplyService.
func (c *Client) ApplyService(ctx context.Context, domain string, serviceID int) (*dnsimple.Response, error) {
	const action = "applying service"

	err := validate(action, requireDomain(domain))
	if err != nil {
		return nil, err
	}

	body, err := payload.New(constants.WrapperService).Set("id", serviceID).Build()
	if err != nil {
		return nil, validate(action, err)
	}

	return c.execute(ctx, action, template.Post(appliedServicesPath, template.Segments{}.Str("domain", domain), body))
}

// UnapplyService implements dnsimple.ServicesAPI.UnapplyService.
func (c *Client) UnapplyService(ctx context.Context, domain string, serviceID int) (*dnsimple.Response, error) {
	const action = "unapplying service"

	err := validate(action, requireDomain(domain))
	if err != nil {
		return nil, err
	}

	segments := template.Segments{}.Str("domain", domain).Int("id", serviceID)

	return c.execute(ctx, action, template.Delete(appliedServicePath, segments))
}
