package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dnsimple-client/internal/constants"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

// NewNameServersCommand creates the name-servers command group.
func NewNameServersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "name-servers",
		Aliases: []string{"ns"},
		Short:   "Manage domain delegation",
		Long:    "Change the name servers a registered domain is delegated to",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set DOMAIN SERVER...",
		Short: "Set name servers",
		Long:  fmt.Sprintf("Delegate a domain to between 1 and %d name servers", constants.MaxNameServers),
		Args:  cobra.MinimumNArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPI(cmd, "", func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.SetNameServers(ctx, args[0], args[1:]...)
			})
		},
	})

	return cmd
}

// NewVanityNameServersCommand creates the vanity-name-servers command group.
func NewVanityNameServersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vanity-name-servers",
		Aliases: []string{"vanity"},
		Short:   "Manage vanity name servers",
		Long:    "Enable or disable vanity name servers for a domain",
	}

	cmd.AddCommand(newVanityEnableCommand())

	cmd.AddCommand(&cobra.Command{
		Use:   "disable DOMAIN",
		Short: "Disable vanity name servers",
		Long:  "Disable vanity name servers for a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPI(cmd, "", func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.DisableVanityNameServers(ctx, args[0])
			})
		},
	})

	return cmd
}

func newVanityEnableCommand() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "enable DOMAIN [SERVER...]",
		Short: "Enable vanity name servers",
		Long: fmt.Sprintf(`Enable vanity name servers for a domain.

With --source external, between 1 and %d external servers are required.
With --source dnsimple, the DNSimple servers are used and SERVER arguments
are ignored.`, constants.MaxVanityNameServers),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			serverSource := dnsimple.ServerSource(source)

			switch serverSource {
			case dnsimple.ServerSourceDNSimple:
			case dnsimple.ServerSourceExternal:
				if len(args) < 2 { //nolint:mnd
					return constants.ErrMissingServers
				}
			default:
				return fmt.Errorf("%w: %q", constants.ErrInvalidSource, source)
			}

			return runAPI(cmd, "", func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.EnableVanityNameServers(ctx, args[0], serverSource, args[1:]...)
			})
		},
	}

	cmd.Flags().StringVar(&source, "source", string(dnsimple.ServerSourceDNSimple), "server source: dnsimple or external")

	return cmd
}
