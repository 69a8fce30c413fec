package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dnsimple-client/internal/constants"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"
	Masked       = "***"

	// Output formats.
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"

	// JSON formatting.
	defaultJSONIndent = 2
)

// Common static errors used throughout the commands package.
var (
	ErrUnknownConfigKey = errors.New("unknown configuration key")
)

// apiCall is one client operation bound to its command arguments.
type apiCall func(ctx context.Context, client dnsimple.Client) (*dnsimple.Response, error)

// runAPI creates a client, performs call and renders the response. Objects
// are unwrapped from wrapper for table output.
func runAPI(cmd *cobra.Command, wrapper string, call apiCall) error {
	client, err := CreateClient(cmd)
	if err != nil {
		return err
	}

	return runWithClient(cmd, client, wrapper, call)
}

func runWithClient(cmd *cobra.Command, client dnsimple.Client, wrapper string, call apiCall) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	resp, err := call(ctx, client)
	if err != nil {
		return err
	}

	return renderResponse(cmd, resp, wrapper)
}

// parseID parses a positional integer identifier.
func parseID(name, value string) (int, error) {
	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, value, constants.ErrInvalidID)
	}

	return id, nil
}

// stringFlag returns a pointer to the flag value when the flag was given.
func stringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	value, _ := cmd.Flags().GetString(name)

	return &value
}

// intFlag returns a pointer to the flag value when the flag was given.
func intFlag(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	value, _ := cmd.Flags().GetInt(name)

	return &value
}
