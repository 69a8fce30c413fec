package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dnsimple-client/internal/constants"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

// NewServicesCommand creates the services command group.
func NewServicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "services",
		Aliases: []string{"service"},
		Short:   "Manage one-click services",
		Long:    "List one-click services and apply them to domains",
	}

	cmd.AddCommand(newServicesListCommand())
	cmd.AddCommand(newServicesGetCommand())
	cmd.AddCommand(newServicesAppliedCommand())
	cmd.AddCommand(newServicesAvailableCommand())
	cmd.AddCommand(newServicesApplyCommand())
	cmd.AddCommand(newServicesUnapplyCommand())

	return cmd
}

func newServicesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List services",
		Long:  "List every one-click service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPI(cmd, constants.WrapperService, func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.ListServices(ctx)
			})
		},
	}
}

func newServicesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SERVICE_ID",
		Short: "Get service details",
		Long:  "Display a single one-click service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("service id", args[0])
			if err != nil {
				return err
			}

			return runAPI(cmd, constants.WrapperService, func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.GetService(ctx, id)
			})
		},
	}
}

func newServicesAppliedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "applied DOMAIN",
		Short: "List applied services",
		Long:  "List the services applied to a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPI(cmd, constants.WrapperService, func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.ListAppliedServices(ctx, args[0])
			})
		},
	}
}

func newServicesAvailableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "available DOMAIN",
		Short: "List available services",
		Long:  "List the services that can still be applied to a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPI(cmd, constants.WrapperService, func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.ListAvailableServices(ctx, args[0])
			})
		},
	}
}

func newServicesApplyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "apply DOMAIN SERVICE_ID",
		Short: "Apply a service",
		Long:  "Apply a one-click service to a domain",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("service id", args[1])
			if err != nil {
				return err
			}

			return runAPI(cmd, constants.WrapperService, func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.ApplyService(ctx, args[0], id)
			})
		},
	}
}

func newServicesUnapplyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unapply DOMAIN SERVICE_ID",
		Short: "Unapply a service",
		Long:  "Remove a one-click service from a domain",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("service id", args[1])
			if err != nil {
				return err
			}

			return runAPI(cmd, constants.WrapperService, func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error) {
				return client.UnapplyService(ctx, args[0], id)
			})
		},
	}
}
