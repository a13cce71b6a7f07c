package cfapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{APIToken: "test-token", BaseURL: server.URL})
	require.NoError(t, err)
	return client, server
}

func TestNewClientRequiresToken(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"success":true,"errors":[],"messages":[],"result":[]}`)
	}))

	_, err := client.ListAccounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestClientClassifiesFailures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind FailureKind
	}{
		{
			name:     "401 is unauthorized",
			status:   http.StatusUnauthorized,
			body:     `{"success":false,"errors":[{"code":10000,"message":"Authentication error"}]}`,
			wantKind: KindUnauthorized,
		},
		{
			name:     "403 is unauthorized",
			status:   http.StatusForbidden,
			body:     `{"success":false,"errors":[{"code":9109,"message":"Unauthorized to access requested resource"}]}`,
			wantKind: KindUnauthorized,
		},
		{
			name:     "404 is not found",
			status:   http.StatusNotFound,
			body:     `{"success":false,"errors":[{"code":7003,"message":"Could not route"}]}`,
			wantKind: KindNotFound,
		},
		{
			name:     "429 is rate limited",
			status:   http.StatusTooManyRequests,
			body:     `{"success":false,"errors":[{"code":971,"message":"Rate limited"}]}`,
			wantKind: KindRateLimited,
		},
		{
			name:     "500 is a server error",
			status:   http.StatusInternalServerError,
			body:     `{"success":false,"errors":[{"code":1000,"message":"Internal error"}]}`,
			wantKind: KindServerError,
		},
		{
			name:     "success=false on 200 is a server error",
			status:   http.StatusOK,
			body:     `{"success":false,"errors":[{"code":1002,"message":"Invalid request"}]}`,
			wantKind: KindServerError,
		},
		{
			name:     "unparseable body is malformed",
			status:   http.StatusOK,
			body:     `<html>gateway timeout</html>`,
			wantKind: KindMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))

			_, err := client.ListAccounts(context.Background())
			require.Error(t, err)

			apiErr, ok := err.(*APIError)
			require.True(t, ok, "expected *APIError, got %T", err)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
		})
	}
}

func TestClientNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // nothing is listening anymore

	client, err := NewClient(Config{APIToken: "test-token", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.ListAccounts(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, KindNetworkError, apiErr.Kind)
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(&APIError{Kind: KindUnauthorized}))
	assert.False(t, IsUnauthorized(&APIError{Kind: KindNotFound}))
	assert.False(t, IsUnauthorized(fmt.Errorf("plain error")))
}

func TestDestinationConf(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		auth     string
		want     string
	}{
		{
			name:     "no auth header",
			endpoint: "https://logs.example.net/ingest",
			auth:     "",
			want:     "https://logs.example.net/ingest",
		},
		{
			name:     "auth header appended",
			endpoint: "https://logs.example.net/ingest",
			auth:     "Bearer abc123",
			want:     "https://logs.example.net/ingest?header_Authorization=Bearer abc123",
		},
		{
			name:     "existing query keeps ampersand",
			endpoint: "https://logs.example.net/ingest?source=cf",
			auth:     "Bearer abc123",
			want:     "https://logs.example.net/ingest?source=cf&header_Authorization=Bearer abc123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DestinationConf(tt.endpoint, tt.auth))
		})
	}
}
