package client

import (
	"context"
	"strings"

	"github.com/fivetwenty-io/dnsimple-client/internal/constants"
	"github.com/fivetwenty-io/dnsimple-client/internal/payload"
	"github.com/fivetwenty-io/dnsimple-client/internal/template"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

const contactPath = "contacts/{id}"

// ListContacts implements dnsimple.ContactsAPI.ListContacts.
func (c *Client) ListContacts(ctx context.Context) (*dnsimple.Response, error) {
	return c.execute(ctx, "listing contacts", template.Get("contacts", nil))
}

// GetContact implements dnsimple.ContactsAPI.GetContact.
func (c *Client) GetContact(ctx context.Context, id int) (*dnsimple.Response, error) {
	return c.execute(ctx, "getting contact", template.Get(contactPath, template.Segments{}.Int("id", id)))
}

// CreateContact implements dnsimple.ContactsAPI.CreateContact.
func (c *Client) CreateContact(ctx context.Context, contact *dnsimple.ContactRequest) (*dnsimple.Response, error) {
	const action = "creating contact"

	body, err := contactPayload(contact)
	if err != nil {
		return nil, validate(action, err)
	}

	return c.execute(ctx, action, template.Post("contacts", nil, body))
}

// UpdateContact implements dnsimple.ContactsAPI.UpdateContact. The full
// contact is sent; the same fields are required as on creation.
func (c *Client) UpdateContact(ctx context.Context, id int, contact *dnsimple.ContactRequest) (*dnsimple.Response, error) {
	const action = "updating contact"

	body, err := contactPayload(contact)
	if err != nil {
		return nil, validate(action, err)
	}

	return c.execute(ctx, action, template.Put(contactPath, template.Segments{}.Int("id", id), body))
}

// DeleteContact implements dnsimple.ContactsAPI.DeleteContact.
func (c *Client) DeleteContact(ctx context.Context, id int) (*dnsimple.Response, error) {
	return c.execute(ctx, "deleting contact", template.Delete(contactPath, template.Segments{}.Int("id", id)))
}

func contactPayload(contact *dnsimple.ContactRequest) (map[string]any, error) {
	if contact == nil {
		return nil, requireRequest("contact", true)
	}

	hasOrganization := contact.OrganizationName != nil && strings.TrimSpace(*contact.OrganizationName) != ""

	return payload.New(constants.WrapperContact).
		Required("first_name", contact.FirstName).
		Required("last_name", contact.LastName).
		Required("address1", contact.Address1).
		Required("city", contact.City).
		Required("state_province", contact.StateProvince).
		Required("postal_code", contact.PostalCode).
		Required("country", contact.Country).
		Required("email_address", contact.EmailAddress).
		Required("phone", contact.Phone).
		Optional("organization_name", contact.OrganizationName).
		RequiredIf(hasOrganization, "job_title", contact.JobTitle, "organization_name is set").
		Optional("fax", contact.Fax).
		Optional("phone_ext", contact.PhoneExt).
		Optional("label", contact.Label).
		Optional("address2", contact.Address2).
		Build()
}
