// Package breaker provides a circuit-breaking HTTPDoer for the optimo
// client. It protects callers that poll the vendor aggressively from
// hammering an endpoint that is already failing. The core client stays
// retry-free; plug a Doer into optimo.Config.HTTPClient to opt in.
package breaker

import (
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

// Config holds circuit breaker settings for a vendor endpoint.
type Config struct {
	// Name identifies the breaker in state-change callbacks.
	Name string

	// Timeout is the per-request timeout of the wrapped HTTP client.
	// Default: 10 seconds.
	Timeout time.Duration

	// OpenFor is how long the breaker stays open before probing again.
	// Default: 60 seconds.
	OpenFor time.Duration

	// MaxProbes is the number of requests allowed while half-open.
	// Default: 1.
	MaxProbes uint32

	// ReadyToTrip decides when to open the circuit. If nil, the breaker
	// opens after 5+ requests with a failure rate of 50% or higher.
	ReadyToTrip func(counts gobreaker.Counts) bool

	// OnStateChange is called on every breaker state transition.
	OnStateChange func(name string, from, to gobreaker.State)

	// Transport executes the requests behind the breaker. If nil, an
	// http.Client with Timeout is used.
	Transport interface {
		Do(req *http.Request) (*http.Response, error)
	}
}

// Doer wraps an HTTP client with a circuit breaker. A response of any
// status counts as success at this layer: the vendor reports failures
// inside its envelope, and only transport-level errors should trip the
// circuit.
type Doer struct {
	transport interface {
		Do(req *http.Request) (*http.Response, error)
	}
	cb *gobreaker.CircuitBreaker[*http.Response]
}

// New builds a circuit-breaking Doer.
func New(cfg Config) *Doer {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.OpenFor == 0 {
		cfg.OpenFor = 60 * time.Second
	}
	if cfg.MaxProbes == 0 {
		cfg.MaxProbes = 1
	}
	if cfg.ReadyToTrip == nil {
		cfg.ReadyToTrip = defaultReadyToTrip
	}

	transport := cfg.Transport
	if transport == nil {
		transport = &http.Client{Timeout: cfg.Timeout}
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxProbes,
		Timeout:     cfg.OpenFor,
		ReadyToTrip: cfg.ReadyToTrip,
	}
	if cfg.OnStateChange != nil {
		settings.OnStateChange = cfg.OnStateChange
	}

	return &Doer{
		transport: transport,
		cb:        gobreaker.NewCircuitBreaker[*http.Response](settings),
	}
}

// Do executes the request through the circuit breaker. While the circuit
// is open it fails immediately with gobreaker.ErrOpenState.
func (d *Doer) Do(req *http.Request) (*http.Response, error) {
	return d.cb.Execute(func() (*http.Response, error) {
		return d.transport.Do(req)
	})
}

// defaultReadyToTrip opens the circuit after at least 5 requests with a
// failure rate of 50% or higher.
func defaultReadyToTrip(counts gobreaker.Counts) bool {
	ratio := float64(counts.TotalFailures) / float64(counts.Requests)
	return counts.Requests >= 5 && ratio >= 0.5
}
