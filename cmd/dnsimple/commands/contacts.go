package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dnsimple-client/internal/constants"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

// contactFlags maps flag names to their usage text.
var contactFlags = []struct {
	name  string
	usage string
}{
	{"first-name", "first name (required)"},
	{"last-name", "last name (required)"},
	{"address1", "street address (required)"},
	{"address2", "second address line"},
	{"city", "city (required)"},
	{"state-province", "state or province (required)"},
	{"postal-code", "postal code (required)"},
	{"country", "two letter country code (required)"},
	{"email-address", "email address (required)"},
	{"phone", "phone number (required)"},
	{"phone-ext", "phone extension"},
	{"fax", "fax number"},
	{"organization-name", "organization name"},
	{"job-title", "job title (required with --organization-name)"},
	{"label", "label shown in listings"},
}

// NewContactsCommand creates the contacts command group.
func NewContactsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "contacts",
		Aliases: []string{"contact"},
		Short:   "Manage registrant contacts",
		Long:    "List and manage the contacts used for domain registration",
	}

	cmd.AddCommand(newContactsListCommand())
	cmd.AddCommand(newContactsGetCommand())
	cmd.AddCommand(newContactsCreateCommand())
	cmd.AddCommand(newContactsUpdateCommand())
	cmd.AddCommand(newContactsDeleteCommand())

	return cmd
}

func newContactsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List contacts",
		Long:  "List all contacts in the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPI(cmd, constants.WrapperContact, func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.ListContacts(ctx)
			})
		},
	}
}

func newContactsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CONTACT_ID",
		Short: "Get contact details",
		Long:  "Display a single contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("contact id", args[0])
			if err != nil {
				return err
			}

			return runAPI(cmd, constants.WrapperContact, func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.GetContact(ctx, id)
			})
		},
	}
}

func addContactFlags(cmd *cobra.Command) {
	for _, flag := range contactFlags {
		cmd.Flags().String(flag.name, "", flag.usage)
	}
}

// contactRequest collects the contact flags that were given.
func contactRequest(cmd *cobra.Command) *dnsimple.ContactRequest {
	return &dnsimple.ContactRequest{
		FirstName:        stringFlag(cmd, "first-name"),
		LastName:         stringFlag(cmd, "last-name"),
		Address1:         stringFlag(cmd, "address1"),
		Address2:         stringFlag(cmd, "address2"),
		City:             stringFlag(cmd, "city"),
		StateProvince:    stringFlag(cmd, "state-province"),
		PostalCode:       stringFlag(cmd, "postal-code"),
		Country:          stringFlag(cmd, "country"),
		EmailAddress:     stringFlag(cmd, "email-address"),
		Phone:            stringFlag(cmd, "phone"),
		PhoneExt:         stringFlag(cmd, "phone-ext"),
		Fax:              stringFlag(cmd, "fax"),
		OrganizationName: stringFlag(cmd, "organization-name"),
		JobTitle:         stringFlag(cmd, "job-title"),
		Label:            stringFlag(cmd, "label"),
	}
}

func newContactsCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a contact",
		Long:  "Create a registrant contact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			request := contactRequest(cmd)

			return runAPI(cmd, constants.WrapperContact, func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.CreateContact(ctx, request)
			})
		},
	}

	addContactFlags(cmd)

	return cmd
}

func newContactsUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update CONTACT_ID",
		Short: "Update a contact",
		Long:  "Replace a contact. The same fields as for create are required.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("contact id", args[0])
			if err != nil {
				return err
			}

			request := contactRequest(cmd)

			return runAPI(cmd, constants.WrapperContact, func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.UpdateContact(ctx, id, request)
			})
		},
	}

	addContactFlags(cmd)

	return cmd
}

func newContactsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete CONTACT_ID",
		Short: "Delete a contact",
		Long:  "Delete a contact from the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("contact id", args[0])
			if err != nil {
				return err
			}

			return runAPI(cmd, constants.WrapperContact, func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.DeleteContact(ctx, id)
			})
		},
	}
}
