package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

// NewWhoisPrivacyCommand creates the whois-privacy command group.
func NewWhoisPrivacyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "whois-privacy",
		Aliases: []string{"privacy"},
		Short:   "Manage WHOIS privacy",
		Long:    "Enable or disable WHOIS privacy protection for a domain",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "enable DOMAIN",
		Short: "Enable WHOIS privacy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPI(cmd, "whois_privacy", func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.EnableWhoisPrivacy(ctx, args[0])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "disable DOMAIN",
		Short: "Disable WHOIS privacy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPI(cmd, "whois_privacy", func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.DisableWhoisPrivacy(ctx, args[0])
			})
		},
	})

	return cmd
}
