package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dnsimplehttp "github.com/fivetwenty-io/dnsimple-client/internal/http"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

// MockAuthenticator for testing.
type MockAuthenticator struct {
	user, pass string
}

func (m *MockAuthenticator) Apply(req *http.Request) {
	req.SetBasicAuth(m.user, m.pass)
}

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.record("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/domains", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.True(t, strings.HasPrefix(request.Header.Get("User-Agent"), "dnsimple-go/"))

			user, pass, ok := request.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "1234", user)
			assert.Equal(t, "key", pass)

			_ = json.NewEncoder(writer).Encode([]map[string]string{{"name": "example.com"}})
		}))
		defer server.Close()

		client := dnsimplehttp.NewClient(server.URL+"/v1/", &MockAuthenticator{user: "1234", pass: "key"})

		resp, err := client.Do(context.Background(), &dnsimplehttp.Request{
			Method: "GET",
			Path:   "domains",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result []map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "example.com", result[0]["name"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/statements", request.URL.Path)
			assert.Equal(t, "page=2", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := dnsimplehttp.NewClient(server.URL+"/v1", nil)

		resp, err := client.Do(context.Background(), &dnsimplehttp.Request{
			Method: "GET",
			Path:   "/statements",
			Query:  url.Values{"page": []string{"2"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "example.com", body["domain"]["name"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := dnsimplehttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &dnsimplehttp.Request{
			Method: "POST",
			Path:   "domains",
			Body:   map[string]any{"domain": map[string]any{"name": "example.com"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("request without body has no content type", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Empty(t, request.Header.Get("Content-Type"))
			assert.Equal(t, int64(0), request.ContentLength)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := dnsimplehttp.NewClient(server.URL, nil)

		_, err := client.Post(context.Background(), "domains/example.com/whois_privacy", nil)
		require.NoError(t, err)
	})

	t.Run("error status is returned as a response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"message":"Domain not found"}`))
		}))
		defer server.Close()

		client := dnsimplehttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "domains/missing.com", nil)
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		assert.JSONEq(t, `{"message":"Domain not found"}`, string(resp.Body))
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			assert.Equal(t, "my-tool/1.0", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := dnsimplehttp.NewClient(server.URL, nil, dnsimplehttp.WithUserAgent("my-tool/1.0"))

		resp, err := client.Do(context.Background(), &dnsimplehttp.Request{
			Method: "GET",
			Path:   "domains",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := dnsimplehttp.NewClient(server.URL, &MockAuthenticator{user: "u", pass: "secret"},
			dnsimplehttp.WithLogger(logger), dnsimplehttp.WithDebug(true))

		_, err := client.Get(context.Background(), "domains", nil)
		require.NoError(t, err)

		// Should have logged request and response
		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])

		for _, entry := range logger.logs {
			assert.NotContains(t, entry["fields"], "Authorization")
		}
	})

	t.Run("without debug nothing is logged", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := dnsimplehttp.NewClient(server.URL, nil, dnsimplehttp.WithLogger(logger))

		_, err := client.Get(context.Background(), "domains", nil)
		require.NoError(t, err)
		assert.Empty(t, logger.logs)
	})
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*dnsimplehttp.Client, context.Context) (*dnsimplehttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *dnsimplehttp.Client, ctx context.Context) (*dnsimplehttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *dnsimplehttp.Client, ctx context.Context) (*dnsimplehttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *dnsimplehttp.Client, ctx context.Context) (*dnsimplehttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *dnsimplehttp.Client, ctx context.Context) (*dnsimplehttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := dnsimplehttp.NewClient(server.URL, nil)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_SingleAttempt(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusInternalServerError, http.StatusServiceUnavailable, http.StatusTooManyRequests} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			t.Parallel()

			var attempts atomic.Int32

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				attempts.Add(1)
				writer.WriteHeader(status)
				_, _ = writer.Write([]byte(`{"message":"try later"}`))
			}))
			defer server.Close()

			client := dnsimplehttp.NewClient(server.URL, nil)

			resp, err := client.Get(context.Background(), "domains", nil)
			require.NoError(t, err)
			assert.Equal(t, status, resp.StatusCode)
			assert.JSONEq(t, `{"message":"try later"}`, string(resp.Body))
			assert.Equal(t, int32(1), attempts.Load())
		})
	}
}

func TestClient_TransportErrors(t *testing.T) {
	t.Parallel()

	t.Run("connection refused", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		baseURL := server.URL
		server.Close()

		client := dnsimplehttp.NewClient(baseURL+"/v1", nil)

		resp, err := client.Get(context.Background(), "domains", nil)
		require.Error(t, err)
		assert.Nil(t, resp)

		var transportErr *dnsimple.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, "GET", transportErr.Method)
		assert.Equal(t, baseURL+"/v1/domains", transportErr.URL)
	})

	t.Run("client timeout", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			select {
			case <-release:
			case <-request.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		client := dnsimplehttp.NewClient(server.URL, nil, dnsimplehttp.WithTimeout(50*time.Millisecond))

		_, err := client.Get(context.Background(), "domains", nil)

		var transportErr *dnsimple.TransportError
		require.ErrorAs(t, err, &transportErr)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := dnsimplehttp.NewClient(server.URL, nil)

		_, err := client.Get(ctx, "domains", nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestClient_Metrics(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	registry := prometheus.NewRegistry()

	first := dnsimplehttp.NewClient(server.URL, nil, dnsimplehttp.WithMetrics(registry))
	second := dnsimplehttp.NewClient(server.URL, nil, dnsimplehttp.WithMetrics(registry))

	_, err := first.Do(context.Background(), &dnsimplehttp.Request{Method: "GET", Path: "domains", Route: "domains"})
	require.NoError(t, err)

	_, err = second.Do(context.Background(), &dnsimplehttp.Request{Method: "GET", Path: "contacts/1", Route: "contacts/{id}"})
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(registry, "dnsimple_client_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
