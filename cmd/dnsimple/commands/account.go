package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

// NewExtendedAttributesCommand creates the extended-attributes command.
func NewExtendedAttributesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "extended-attributes TLD",
		Short: "List extended attributes of a TLD",
		Long:  "List the extra registrant attributes a top-level domain requires",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPI(cmd, "", func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.GetExtendedAttributes(ctx, args[0])
			})
		},
	}
}

// NewStatementsCommand creates the statements command.
func NewStatementsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "statements",
		Short: "List account statements",
		Long:  "List the billing statements of the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPI(cmd, "statement", func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.ListStatements(ctx)
			})
		},
	}
}
