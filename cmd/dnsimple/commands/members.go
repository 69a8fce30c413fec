package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dnsimple-client/internal/constants"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

// NewMembersCommand creates the members command group.
func NewMembersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "members",
		Aliases: []string{"memberships"},
		Short:   "Manage domain sharing",
		Long:    "Share a domain with other DNSimple users",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list DOMAIN",
		Short: "List members",
		Long:  "List the users a domain is shared with",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPI(cmd, constants.WrapperMembership, func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.ListMemberships(ctx, args[0])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add DOMAIN EMAIL",
		Short: "Add a member",
		Long:  "Share a domain with the user owning EMAIL",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPI(cmd, constants.WrapperMembership, func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.CreateMembership(ctx, args[0], args[1])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove DOMAIN EMAIL",
		Short: "Remove a member",
		Long:  "Stop sharing a domain with the user owning EMAIL",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPI(cmd, constants.WrapperMembership, func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.DeleteMembership(ctx, args[0], args[1])
			})
		},
	})

	return cmd
}
