package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/dnsimple-client/internal/constants"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimpleclient"
)

// Viper keys. Each also reads DNSIMPLE_<KEY> from the environment.
const (
	keyBaseURL   = "base_url"
	keyAccountID = "account_id"
	keyAPIKey    = "api_key"
	keyUsername  = "username"
	keyPassword  = "password"
	keyToken     = "token"
	keyOutput    = "output"
	keyVerbose   = "verbose"
)

// Config is the persisted CLI configuration.
type Config struct {
	BaseURL   string `json:"base_url,omitempty"   yaml:"base_url,omitempty"`
	AccountID string `json:"account_id,omitempty" yaml:"account_id,omitempty"`
	APIKey    string `json:"api_key,omitempty"    yaml:"api_key,omitempty"`
	Username  string `json:"username,omitempty"   yaml:"username,omitempty"`
	Password  string `json:"password,omitempty"   yaml:"password,omitempty"`
	Token     string `json:"token,omitempty"      yaml:"token,omitempty"`
	Output    string `json:"output,omitempty"     yaml:"output,omitempty"`
}

// HasCredential reports whether any authentication scheme is configured.
func (c *Config) HasCredential() bool {
	return c.Token != "" || (c.Username != "" && c.Password != "") || (c.AccountID != "" && c.APIKey != "")
}

// Masked returns a copy with secrets hidden.
func (c *Config) Masked() *Config {
	masked := *c

	for _, secret := range []*string{&masked.APIKey, &masked.Password, &masked.Token} {
		if *secret != "" {
			*secret = Masked
		}
	}

	return &masked
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show or change the DNSimple CLI configuration",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig().Masked()

			switch viper.GetString(keyOutput) {
			case OutputFormatJSON, OutputFormatYAML:
				return encode(cmd.OutOrStdout(), config)
			default:
				table := tablewriter.NewWriter(cmd.OutOrStdout())
				table.Header("Setting", "Value")
				_ = table.Append(keyBaseURL, dnsimpleclient.NormalizeBaseURL(config.BaseURL))
				_ = table.Append(keyAccountID, config.AccountID)
				_ = table.Append(keyAPIKey, config.APIKey)
				_ = table.Append(keyUsername, config.Username)
				_ = table.Append(keyPassword, config.Password)
				_ = table.Append(keyToken, config.Token)
				_ = table.Append("config_file", viper.ConfigFileUsed())

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "set KEY VALUE",
		Short:     "Set a configuration value",
		Long:      "Persist base_url or output in the configuration file",
		Args:      cobra.ExactArgs(2), //nolint:mnd
		ValidArgs: []string{keyBaseURL, keyOutput},
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfigFile()
			if err != nil {
				return err
			}

			switch args[0] {
			case keyBaseURL:
				config.BaseURL = args[1]
			case keyOutput:
				if !validOutput(args[1]) {
					return constants.ErrInvalidOutput
				}

				config.Output = args[1]
			default:
				return fmt.Errorf("%w: %s", ErrUnknownConfigKey, args[0])
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			viper.Set(args[0], args[1])

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

// loadConfig reads the effective configuration from viper.
func loadConfig() *Config {
	return &Config{
		BaseURL:   viper.GetString(keyBaseURL),
		AccountID: viper.GetString(keyAccountID),
		APIKey:    viper.GetString(keyAPIKey),
		Username:  viper.GetString(keyUsername),
		Password:  viper.GetString(keyPassword),
		Token:     viper.GetString(keyToken),
		Output:    viper.GetString(keyOutput),
	}
}

// loadConfigFile reads only what is stored in the configuration file,
// ignoring flags and DNSIMPLE_* variables. A missing file is empty.
func loadConfigFile() (*Config, error) {
	configFile, err := configFilePath()
	if err != nil {
		return nil, err
	}

	config := &Config{}

	data, err := os.ReadFile(filepath.Clean(configFile))
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// configFilePath returns the file viper loaded, or ~/.dnsimple/config.yml.
func configFilePath() (string, error) {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".dnsimple", "config.yml"), nil
}

// saveConfigStruct writes config to the configuration file as given.
func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// clientConfig converts the CLI configuration into a library config.
func clientConfig(config *Config, logger dnsimple.Logger, verbose bool) *dnsimple.Config {
	clientConfig := &dnsimple.Config{
		BaseURL:     strings.TrimSpace(config.BaseURL),
		AccountID:   config.AccountID,
		APIKey:      config.APIKey,
		Username:    config.Username,
		Password:    config.Password,
		Token:       config.Token,
		HTTPTimeout: constants.DefaultHTTPTimeout,
	}

	if verbose {
		clientConfig.Debug = true
		clientConfig.Logger = logger
	}

	return clientConfig
}

// CreateClient builds a client from the effective configuration.
func CreateClient(cmd *cobra.Command) (dnsimple.Client, error) {
	config := loadConfig()
	if !config.HasCredential() {
		return nil, constants.ErrNotLoggedIn
	}

	verbose := viper.GetBool(keyVerbose)
	logger := newLogger(cmd.ErrOrStderr(), verbose)

	client, err := dnsimpleclient.New(clientConfig(config, logger, verbose))
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}
