package optimo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestTransport_GetResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if got := r.URL.Path; got != "/v1/get_result" {
			t.Errorf("expected path /v1/get_result, got %s", got)
		}
		if got := r.URL.Query().Get("key"); got != "secret" {
			t.Errorf("expected key=secret, got %q", got)
		}
		if got := r.URL.Query().Get("requestId"); got != "1234" {
			t.Errorf("expected requestId=1234, got %q", got)
		}
		w.Header().Set("X-Trace", "abc")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	tr := NewTransport(server.URL, "v1", "secret", server.Client(), zerolog.Nop())
	raw, err := tr.GetResult(context.Background(), "1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if raw.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", raw.StatusCode)
	}
	if got := raw.Header.Get("X-Trace"); got != "abc" {
		t.Errorf("expected header passthrough, got %q", got)
	}
	if string(raw.Body) != `{"success":true}` {
		t.Errorf("unexpected body %q", raw.Body)
	}
}

func TestTransport_PostDoesNotInterpretStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Path; got != "/v2/stop_planning" {
			t.Errorf("expected path /v2/stop_planning, got %s", got)
		}
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer server.Close()

	tr := NewTransport(server.URL, "v2", "secret", server.Client(), zerolog.Nop())
	raw, err := tr.StopPlanning(context.Background(), []byte(`{"requestId":"1"}`))
	if err != nil {
		t.Fatalf("transport must not turn status codes into errors, got %v", err)
	}
	if raw.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected raw status 500, got %d", raw.StatusCode)
	}
	if string(raw.Body) != "boom" {
		t.Errorf("expected raw body passthrough, got %q", raw.Body)
	}
}

func TestTransport_NetworkErrorSurfaces(t *testing.T) {
	tr := NewTransport("https://api.example.com", "v1", "secret", &failingDoer{}, zerolog.Nop())
	if _, err := tr.PlanRoutes(context.Background(), []byte(`{}`)); err == nil {
		t.Fatal("expected error, got nil")
	}
}
