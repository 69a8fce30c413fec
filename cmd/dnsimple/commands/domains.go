package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dnsimple-client/internal/constants"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

// NewDomainsCommand creates the domains command group.
func NewDomainsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "domains",
		Aliases: []string{"domain"},
		Short:   "Manage domains",
		Long:    "List, inspect, register and delete domains in the account",
	}

	cmd.AddCommand(newDomainsListCommand())
	cmd.AddCommand(newDomainsGetCommand())
	cmd.AddCommand(newDomainsCreateCommand())
	cmd.AddCommand(newDomainsDeleteCommand())

	return cmd
}

func newDomainsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List domains",
		Long:  "List all domains in the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPI(cmd, constants.WrapperDomain, func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.ListDomains(ctx)
			})
		},
	}
}

func newDomainsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get DOMAIN",
		Short: "Get domain details",
		Long:  "Display a domain by name or numeric id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPI(cmd, constants.WrapperDomain, func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.GetDomain(ctx, args[0])
			})
		},
	}
}

func newDomainsCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME",
		Short: "Create a domain",
		Long:  "Add a domain to the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPI(cmd, constants.WrapperDomain, func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.CreateDomain(ctx, args[0])
			})
		},
	}
}

func newDomainsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete DOMAIN",
		Short: "Delete a domain",
		Long:  "Remove a domain, by name or numeric id, from the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPI(cmd, constants.WrapperDomain, func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.DeleteDomain(ctx, args[0])
			})
		},
	}
}
