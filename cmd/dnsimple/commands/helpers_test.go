package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// resetViper isolates a test from the global viper state and points the
// config file at a temporary directory.
func resetViper(t *testing.T) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	configFile := filepath.Join(t.TempDir(), "dnsimple", "config.yml")
	viper.SetConfigFile(configFile)

	return configFile
}

type apiRequest struct {
	Method string
	Path   string
	Token  string
	Body   string
}

// newAPIServer replies to every request with status and body and points the
// CLI configuration at it with a token credential.
func newAPIServer(t *testing.T, status int, body string) func() []apiRequest {
	t.Helper()

	var (
		mu       sync.Mutex
		requests []apiRequest
	)

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		var data bytes.Buffer
		_, _ = data.ReadFrom(request.Body)

		mu.Lock()
		requests = append(requests, apiRequest{
			Method: request.Method,
			Path:   request.URL.EscapedPath(),
			Token:  request.Header.Get("X-DNSimple-Token"),
			Body:   data.String(),
		})
		mu.Unlock()

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		_, _ = writer.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	viper.Set(keyBaseURL, server.URL)
	viper.Set(keyUsername, "me@example.com")
	viper.Set(keyToken, "secret")

	return func() []apiRequest {
		mu.Lock()
		defer mu.Unlock()

		return append([]apiRequest(nil), requests...)
	}
}

// execute runs cmd with args and returns what it wrote to stdout and stderr.
func execute(cmd *cobra.Command, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer

	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}
