package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/dnsimple-client/internal/auth"
	internalhttp "github.com/fivetwenty-io/dnsimple-client/internal/http"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

// stubTransport records every request and replies with a canned exchange.
type stubTransport struct {
	mu       sync.Mutex
	requests []*internalhttp.Request
	status   int
	body     string
	err      error
}

func (s *stubTransport) Do(_ context.Context, req *internalhttp.Request) (*internalhttp.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)

	if s.err != nil {
		return nil, s.err
	}

	status := s.status
	if status == 0 {
		status = http.StatusOK
	}

	return &internalhttp.Response{StatusCode: status, Body: []byte(s.body)}, nil
}

func (s *stubTransport) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.requests)
}

func (s *stubTransport) last() *internalhttp.Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.requests) == 0 {
		return nil
	}

	return s.requests[len(s.requests)-1]
}

func newStubClient(stub *stubTransport) *Client {
	return NewWithTransport(stub, auth.NewAccountKey("1234", "key"))
}

// recordedRequest is what the test server saw.
type recordedRequest struct {
	Method      string
	Path        string
	RawPath     string
	ContentType string
	Accept      string
	BasicUser   string
	Body        []byte
}

// newTestServer starts a server that records requests and replies with
// status and body.
func newTestServer(t *testing.T, status int, body string) (*httptest.Server, func() []recordedRequest) {
	t.Helper()

	var (
		mu       sync.Mutex
		recorded []recordedRequest
	)

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		data, _ := io.ReadAll(request.Body)
		user, _, _ := request.BasicAuth()

		mu.Lock()
		recorded = append(recorded, recordedRequest{
			Method:      request.Method,
			Path:        request.URL.Path,
			RawPath:     request.URL.EscapedPath(),
			ContentType: request.Header.Get("Content-Type"),
			Accept:      request.Header.Get("Accept"),
			BasicUser:   user,
			Body:        data,
		})
		mu.Unlock()

		writer.WriteHeader(status)
		_, _ = writer.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server, func() []recordedRequest {
		mu.Lock()
		defer mu.Unlock()

		return append([]recordedRequest(nil), recorded...)
	}
}

func newServerClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()

	client, err := New(&dnsimple.Config{
		BaseURL:   server.URL,
		AccountID: "1234",
		APIKey:    "key",
	})
	require.NoError(t, err)

	return client
}

// jsonTree decodes data into generic maps for comparison.
func jsonTree(t *testing.T, data []byte) map[string]any {
	t.Helper()

	var tree map[string]any

	require.NoError(t, json.Unmarshal(data, &tree))

	return tree
}

// bodyTree encodes a request body and decodes it back.
func bodyTree(t *testing.T, body interface{}) map[string]any {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	return jsonTree(t, data)
}
