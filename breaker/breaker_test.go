package breaker_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimoroute/optimo-go/breaker"
)

func TestDoer_PassesThroughResponses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	d := breaker.New(breaker.Config{Name: "optimoroute", Transport: server.Client()})

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, http.NoBody)
	require.NoError(t, err)

	resp, err := d.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDoer_VendorFailuresDoNotTrip(t *testing.T) {
	// Envelope-level failures arrive as perfectly good HTTP responses;
	// the breaker must stay closed for them.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":false,"code":"ERR_INTERNAL"}`))
	}))
	defer server.Close()

	d := breaker.New(breaker.Config{Name: "vendor-failures", Transport: server.Client()})

	for i := 0; i < 10; i++ {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, http.NoBody)
		require.NoError(t, err)

		resp, err := d.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
	}
}

func TestDoer_TripsOnTransportErrors(t *testing.T) {
	d := breaker.New(breaker.Config{
		Name:      "flaky",
		Transport: failingTransport{},
	})

	var lastErr error
	for i := 0; i < 10; i++ {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "https://api.example.com", http.NoBody)
		require.NoError(t, err)
		_, lastErr = d.Do(req)
		require.Error(t, lastErr)
	}

	assert.ErrorIs(t, lastErr, gobreaker.ErrOpenState, "breaker should be open after repeated transport failures")
}

type failingTransport struct{}

func (failingTransport) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}
