package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dnsimple-client/internal/constants"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

// NewRecordsCommand creates the records command group.
func NewRecordsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "records",
		Aliases: []string{"record"},
		Short:   "Manage DNS records",
		Long:    "List and manage the DNS records of a domain",
	}

	cmd.AddCommand(newRecordsListCommand())
	cmd.AddCommand(newRecordsGetCommand())
	cmd.AddCommand(newRecordsCreateCommand())
	cmd.AddCommand(newRecordsUpdateCommand())
	cmd.AddCommand(newRecordsDeleteCommand())

	return cmd
}

func newRecordsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list DOMAIN",
		Short: "List records",
		Long:  "List all records of a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPI(cmd, constants.WrapperRecord, func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.ListRecords(ctx, args[0])
			})
		},
	}
}

func newRecordsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get DOMAIN RECORD_ID",
		Short: "Get record details",
		Long:  "Display a single record of a domain",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("record id", args[1])
			if err != nil {
				return err
			}

			return runAPI(cmd, constants.WrapperRecord, func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.GetRecord(ctx, args[0], id)
			})
		},
	}
}

func addRecordFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "record name, empty for the apex")
	cmd.Flags().String("content", "", "record content")
	cmd.Flags().Int("ttl", 0, "time to live in seconds")
	cmd.Flags().Int("prio", 0, "priority for MX and SRV records")
}

func newRecordsCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create DOMAIN",
		Short: "Create a record",
		Long:  "Create a DNS record. --name is required and may be empty for the apex.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &dnsimple.RecordRequest{
				Name:       stringFlag(cmd, "name"),
				RecordType: stringFlag(cmd, "type"),
				Content:    stringFlag(cmd, "content"),
				TTL:        intFlag(cmd, "ttl"),
				Priority:   intFlag(cmd, "prio"),
			}

			return runAPI(cmd, constants.WrapperRecord, func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.CreateRecord(ctx, args[0], request)
			})
		},
	}

	addRecordFlags(cmd)
	cmd.Flags().String("type", "", "record type (A, AAAA, CNAME, MX, TXT, ...)")

	return cmd
}

func newRecordsUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update DOMAIN RECORD_ID",
		Short: "Update a record",
		Long:  "Update the given fields of a DNS record",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("record id", args[1])
			if err != nil {
				return err
			}

			request := &dnsimple.RecordUpdateRequest{
				Name:     stringFlag(cmd, "name"),
				Content:  stringFlag(cmd, "content"),
				TTL:      intFlag(cmd, "ttl"),
				Priority: intFlag(cmd, "prio"),
			}

			if request.Name == nil && request.Content == nil && request.TTL == nil && request.Priority == nil {
				return constants.ErrNoFieldsToUpdate
			}

			return runAPI(cmd, constants.WrapperRecord, func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.UpdateRecord(ctx, args[0], id, request)
			})
		},
	}

	addRecordFlags(cmd)

	return cmd
}

func newRecordsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete DOMAIN RECORD_ID",
		Short: "Delete a record",
		Long:  "Delete a DNS record from a domain",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("record id", args[1])
			if err != nil {
				return err
			}

			return runAPI(cmd, constants.WrapperRecord, func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.DeleteRecord(ctx, args[0], id)
			})
		},
	}
}
