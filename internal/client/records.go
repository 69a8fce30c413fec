package client

import (
	"context"

	"github.com/fivetwenty-io/dnsimple-client/internal/constants"
	"github.com/fivetwenty-io/dnsimple-client/internal/payload"
	"github.com/fivetwenty-io/dnsimple-client/internal/template"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

const (
	recordsPath = "domains/{domain}/records"
	recordPath  = "domains/{domain}/records/{id}"
)

// ListRecords implements dnsimple.RecordsAPI.ListRecords.
func (c *Client) ListRecords(ctx context.Context, domain string) (*dnsimple.Response, error) {
	const action = "listing records"

	err := validate(action, requireDomain(domain))
	if err != nil {
		return nil, err
	}

	return c.execute(ctx, action, template.Get(recordsPath, template.Segments{}.Str("domain", domain)))
}

// GetRecord implements dnsimple.RecordsAPI.GetRecord.
func (c *Client) GetRecord(ctx context.Context, domain string, id int) (*dnsimple.Response, error) {
	const action = "getting record"

	err := validate(action, requireDomain(domain))
	if err != nil {
		return nil, err
	}

	return c.execute(ctx, action, template.Get(recordPath, recordSegments(domain, id)))
}

// CreateRecord implements dnsimple.RecordsAPI.CreateRecord.
func (c *Client) CreateRecord(ctx context.Context, domain string, record *dnsimple.RecordRequest) (*dnsimple.Response, error) {
	const action = "creating record"

	err := validate(action, requireDomain(domain), requireRequest("record", record == nil))
	if err != nil {
		return nil, err
	}

	body, err := payload.New(constants.WrapperRecord).
		Required("name", record.Name).
		Present("record_type", record.RecordType).
		Present("content", record.Content).
		Optional("ttl", record.TTL).
		Optional("prio", record.Priority).
		Build()
	if err != nil {
		return nil, validate(action, err)
	}

	return c.execute(ctx, action, template.Post(recordsPath, template.Segments{}.Str("domain", domain), body))
}

// UpdateRecord implements dnsimple.RecordsAPI.UpdateRecord. When no field
// is set the request is sent without a body.
func (c *Client) UpdateRecord(ctx context.Context, domain string, id int, record *dnsimple.RecordUpdateRequest) (*dnsimple.Response, error) {
	const action = "updating record"

	err := validate(action, requireDomain(domain))
	if err != nil {
		return nil, err
	}

	if record == nil {
		record = &dnsimple.RecordUpdateRequest{}
	}

	builder := payload.New(constants.WrapperRecord).
		Optional("name", record.Name).
		Optional("content", record.Content).
		Optional("ttl", record.TTL).
		Optional("prio", record.Priority)

	var body map[string]any

	if !builder.Empty() {
		body, err = builder.Build()
		if err != nil {
			return nil, validate(action, err)
		}
	}

	return c.execute(ctx, action, template.Put(recordPath, recordSegments(domain, id), body))
}

// DeleteRecord implements dnsimple.RecordsAPI.DeleteRecord.
func (c *Client) DeleteRecord(ctx context.Context, domain string, id int) (*dnsimple.Response, error) {
	const action = "deleting record"

	err := validate(action, requireDomain(domain))
	if err != nil {
		return nil, err
	}

	return c.execute(ctx, action, template.Delete(recordPath, recordSegments(domain, id)))
}

func recordSegments(domain string, id int) template.Segments {
	return template.Segments{}.Str("domain", domain).Int("id", id)
}

// requireRequest rejects a nil request struct for operations with a body.
func requireRequest(name string, missing bool) error {
	if missing {
		return &dnsimple.ValidationError{Field: name, Reason: dnsimple.ErrRequiredArgument}
	}

	return nil
}
