package dnsimpleclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimpleclient"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := dnsimpleclient.New(nil)
		require.ErrorIs(t, err, dnsimple.ErrConfigRequired)
	})

	t.Run("no credentials", func(t *testing.T) {
		t.Parallel()

		_, err := dnsimpleclient.New(&dnsimple.Config{})
		require.ErrorIs(t, err, dnsimple.ErrNoCredentials)
	})

	t.Run("leaves the caller's config untouched", func(t *testing.T) {
		t.Parallel()

		config := &dnsimple.Config{BaseURL: "api.sandbox.dnsimple.com/", Token: "abc"}

		client, err := dnsimpleclient.New(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, "api.sandbox.dnsimple.com/", config.BaseURL)
	})
}

func TestNormalizeBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", dnsimpleclient.ProductionBaseURL},
		{"  ", "https://api.dnsimple.com"},
		{"api.dnsimple.com", "https://api.dnsimple.com"},
		{"https://api.dnsimple.com/", "https://api.dnsimple.com"},
		{"http://localhost:8080", "http://localhost:8080"},
		{"api.sandbox.dnsimple.com/", dnsimpleclient.SandboxBaseURL},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, dnsimpleclient.NormalizeBaseURL(tt.in), tt.in)
	}
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	type seen struct {
		token string
		user  string
		pass  string
	}

	received := make(chan seen, 3)

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		user, pass, _ := request.BasicAuth()
		received <- seen{token: request.Header.Get("X-DNSimple-Token"), user: user, pass: pass}

		_, _ = writer.Write([]byte(`[]`))
	}))
	defer server.Close()

	tests := []struct {
		name string
		make func() (dnsimple.Client, error)
		want seen
	}{
		{
			name: "account key",
			make: func() (dnsimple.Client, error) { return dnsimpleclient.NewWithAccountKey(server.URL, "1234", "key") },
			want: seen{user: "1234", pass: "key"},
		},
		{
			name: "password",
			make: func() (dnsimple.Client, error) {
				return dnsimpleclient.NewWithPassword(server.URL, "me@example.com", "secret")
			},
			want: seen{user: "me@example.com", pass: "secret"},
		},
		{
			name: "token",
			make: func() (dnsimple.Client, error) {
				return dnsimpleclient.NewWithToken(server.URL, "me@example.com", "domain-token")
			},
			want: seen{token: "me@example.com:domain-token"},
		},
	}

	for _, tt := range tests {
		client, err := tt.make()
		require.NoError(t, err, tt.name)

		resp, err := client.ListDomains(context.Background())
		require.NoError(t, err, tt.name)
		assert.Equal(t, dnsimple.ResponseList, resp.Kind(), tt.name)
		assert.Equal(t, tt.want, <-received, tt.name)
	}
}
