package commands

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/dnsimple-client/internal/constants"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimpleclient"
)

func stubSecret(t *testing.T, secret string) *int {
	t.Helper()

	prompts := 0
	original := readSecret

	readSecret = func(_ *cobra.Command, _ string) (string, error) {
		prompts++

		return secret, nil
	}

	t.Cleanup(func() { readSecret = original })

	return &prompts
}

func readConfigFile(t *testing.T, path string) Config {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var config Config

	require.NoError(t, yaml.Unmarshal(data, &config))

	return config
}

func TestLogin_Schemes(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		secret  string
		want    Config
		prompts int
		err     error
	}{
		{
			name: "token",
			args: []string{"--username", "me@example.com", "--token", "abc"},
			want: Config{Username: "me@example.com", Token: "abc"},
		},
		{
			name:    "password prompted",
			args:    []string{"--username", "me@example.com"},
			secret:  "hunter2",
			want:    Config{Username: "me@example.com", Password: "hunter2"},
			prompts: 1,
		},
		{
			name: "account key",
			args: []string{"--account-id", "1234", "--api-key", "key"},
			want: Config{AccountID: "1234", APIKey: "key"},
		},
		{
			name:    "empty prompted key",
			args:    []string{"--account-id", "1234"},
			prompts: 1,
			err:     constants.ErrEmptySecret,
		},
		{
			name: "empty token",
			args: []string{"--token", " "},
			err:  constants.ErrEmptySecret,
		},
		{
			name: "conflicting secrets",
			args: []string{"--username", "me@example.com", "--password", "a", "--token", "b"},
			err:  constants.ErrConflictingSecrets,
		},
		{
			name: "nothing given",
			err:  dnsimple.ErrNoCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile := resetViper(t)
			prompts := stubSecret(t, tt.secret)

			_, _, err := execute(NewLoginCommand(), append(tt.args, "--no-verify")...)
			assert.Equal(t, tt.prompts, *prompts)

			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				assert.NoFileExists(t, configFile)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, readConfigFile(t, configFile))

			info, err := os.Stat(configFile)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())
		})
	}
}

func TestLogin_Verifies(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		configFile := resetViper(t)
		requests := newAPIServer(t, http.StatusOK, `[]`)

		stdout, _, err := execute(NewLoginCommand(), "--account-id", "1234", "--api-key", "key")
		require.NoError(t, err)
		assert.Equal(t, "Credentials saved\n", stdout)
		assert.Len(t, requests(), 1)

		saved := readConfigFile(t, configFile)
		assert.Equal(t, "1234", saved.AccountID)
		assert.Equal(t, viper.GetString(keyBaseURL), saved.BaseURL)
	})

	t.Run("rejected", func(t *testing.T) {
		configFile := resetViper(t)
		newAPIServer(t, http.StatusUnauthorized, `{"message":"Authentication failed"}`)

		_, _, err := execute(NewLoginCommand(), "--account-id", "1234", "--api-key", "wrong")
		require.ErrorIs(t, err, constants.ErrRemoteFailure)
		assert.True(t, dnsimple.IsUnauthorized(err))
		assert.NoFileExists(t, configFile)
	})
}

func writeConfigFile(t *testing.T, path string, config Config) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm))

	data, err := yaml.Marshal(config)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, constants.ConfigFilePerm))
}

func TestLogout(t *testing.T) {
	configFile := resetViper(t)
	writeConfigFile(t, configFile, Config{
		BaseURL:   dnsimpleclient.SandboxBaseURL,
		AccountID: "1234",
		APIKey:    "key",
		Token:     "abc",
		Output:    OutputFormatYAML,
	})
	require.NoError(t, viper.ReadInConfig())

	stdout, _, err := execute(NewLogoutCommand())
	require.NoError(t, err)
	assert.Equal(t, "Logged out\n", stdout)

	assert.Equal(t, Config{BaseURL: dnsimpleclient.SandboxBaseURL, Output: OutputFormatYAML}, readConfigFile(t, configFile))
	assert.False(t, loadConfig().HasCredential())
}

func TestLogout_KeepsOverridesOutOfFile(t *testing.T) {
	configFile := resetViper(t)
	writeConfigFile(t, configFile, Config{Username: "me@example.com", Token: "abc"})
	require.NoError(t, viper.ReadInConfig())
	viper.Set(keyBaseURL, "http://localhost:8080")
	viper.Set(keyOutput, OutputFormatJSON)

	_, _, err := execute(NewLogoutCommand())
	require.NoError(t, err)
	assert.Equal(t, Config{}, readConfigFile(t, configFile))
}

func TestConfigShow_MasksSecrets(t *testing.T) {
	resetViper(t)
	viper.Set(keyOutput, OutputFormatJSON)
	viper.Set(keyUsername, "me@example.com")
	viper.Set(keyPassword, "hunter2")

	stdout, _, err := execute(NewConfigCommand(), "show")
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"me@example.com","password":"***","output":"json"}`, stdout)
}

func TestConfigSet(t *testing.T) {
	configFile := resetViper(t)

	_, _, err := execute(NewConfigCommand(), "set", "output", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "yaml", readConfigFile(t, configFile).Output)

	_, _, err = execute(NewConfigCommand(), "set", "output", "xml")
	require.ErrorIs(t, err, constants.ErrInvalidOutput)

	_, _, err = execute(NewConfigCommand(), "set", "colour", "red")
	require.ErrorIs(t, err, ErrUnknownConfigKey)
}

func TestConfigSet_LeavesEnvironmentSecretsOutOfFile(t *testing.T) {
	configFile := resetViper(t)
	writeConfigFile(t, configFile, Config{BaseURL: dnsimpleclient.SandboxBaseURL})
	require.NoError(t, viper.ReadInConfig())

	t.Setenv("DNSIMPLE_USERNAME", "me@example.com")
	t.Setenv("DNSIMPLE_TOKEN", "env-only-token")
	viper.SetEnvPrefix("DNSIMPLE")
	viper.AutomaticEnv()
	require.Equal(t, "env-only-token", viper.GetString(keyToken))

	_, _, err := execute(NewConfigCommand(), "set", "output", "json")
	require.NoError(t, err)

	saved := readConfigFile(t, configFile)
	assert.Empty(t, saved.Token)
	assert.Empty(t, saved.Username)
	assert.Equal(t, Config{BaseURL: dnsimpleclient.SandboxBaseURL, Output: OutputFormatJSON}, saved)

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "env-only-token")
}

func TestVersion_JSON(t *testing.T) {
	resetViper(t)
	viper.Set(keyOutput, OutputFormatJSON)

	stdout, _, err := execute(NewVersionCommand("1.2.3", "abc123", "2026-01-01"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.2.3","commit":"abc123","built":"2026-01-01"}`, stdout)
}
