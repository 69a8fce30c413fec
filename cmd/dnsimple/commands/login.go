package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/dnsimple-client/internal/constants"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimpleclient"
)

// readSecret prompts on stderr and reads a line from the terminal without
// echo.
var readSecret = func(cmd *cobra.Command, prompt string) (string, error) {
	_, _ = fmt.Fprint(cmd.ErrOrStderr(), prompt)

	data, err := term.ReadPassword(int(os.Stdin.Fd()))
	_, _ = fmt.Fprintln(cmd.ErrOrStderr())

	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

type loginOptions struct {
	accountID string
	apiKey    string
	username  string
	password  string
	token     string
	noVerify  bool
}

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	opts := &loginOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store DNSimple credentials",
		Long: `Store credentials in the configuration file.

Pass --token with --username for a domain token, --username for password
authentication, or --account-id for an account API key. Secrets that are
not given as flags are prompted for.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.credential(cmd)
			if err != nil {
				return err
			}

			config.BaseURL = viper.GetString(keyBaseURL)
			config.Output = viper.GetString(keyOutput)

			if !opts.noVerify {
				err = verifyCredential(cmd, config)
				if err != nil {
					return err
				}
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Credentials saved")

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.accountID, "account-id", "", "account id for API key authentication")
	cmd.Flags().StringVar(&opts.apiKey, "api-key", "", "account API key")
	cmd.Flags().StringVarP(&opts.username, "username", "u", "", "account email address")
	cmd.Flags().StringVarP(&opts.password, "password", "p", "", "account password")
	cmd.Flags().StringVar(&opts.token, "token", "", "domain API token")
	cmd.Flags().BoolVar(&opts.noVerify, "no-verify", false, "save without contacting the API")

	return cmd
}

// credential resolves the flags into exactly one authentication scheme.
func (o *loginOptions) credential(cmd *cobra.Command) (*Config, error) {
	given := 0

	for _, secret := range []string{o.apiKey, o.password, o.token} {
		if secret != "" {
			given++
		}
	}

	if given > 1 {
		return nil, constants.ErrConflictingSecrets
	}

	var err error

	switch {
	case cmd.Flags().Changed("token"):
		if strings.TrimSpace(o.token) == "" {
			return nil, constants.ErrEmptySecret
		}

		return &Config{Username: o.username, Token: o.token}, nil
	case o.username != "":
		if o.password == "" {
			o.password, err = readSecret(cmd, "Password: ")
			if err != nil {
				return nil, err
			}
		}

		if o.password == "" {
			return nil, constants.ErrEmptySecret
		}

		return &Config{Username: o.username, Password: o.password}, nil
	case o.accountID != "":
		if o.apiKey == "" {
			o.apiKey, err = readSecret(cmd, "API key: ")
			if err != nil {
				return nil, err
			}
		}

		if o.apiKey == "" {
			return nil, constants.ErrEmptySecret
		}

		return &Config{AccountID: o.accountID, APIKey: o.apiKey}, nil
	default:
		return nil, fmt.Errorf("%w: pass --username, --account-id or --token", dnsimple.ErrNoCredentials)
	}
}

func verifyCredential(cmd *cobra.Command, config *Config) error {
	client, err := dnsimpleclient.New(clientConfig(config, nil, false))
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	resp, err := client.ListDomains(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to connect to API: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("%w: %w", constants.ErrRemoteFailure, resp.Err())
	}

	return nil
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials",
		Long:  "Remove every credential from the configuration file, keeping other settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfigFile()
			if err != nil {
				return err
			}

			config.AccountID = ""
			config.APIKey = ""
			config.Username = ""
			config.Password = ""
			config.Token = ""

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			for _, key := range []string{keyAccountID, keyAPIKey, keyUsername, keyPassword, keyToken} {
				viper.Set(key, "")
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")

			return nil
		},
	}
}
