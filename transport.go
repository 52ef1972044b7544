package optimo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
)

// Vendor endpoint names, appended to "<base>/<version>/".
const (
	endpointPlanRoutes   = "plan_routes"
	endpointGetResult    = "get_result"
	endpointStopPlanning = "stop_planning"
)

// HTTPDoer is an interface for executing HTTP requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RawResponse is the uniform envelope the transport hands back for every
// call, regardless of the HTTP library behind the HTTPDoer. The transport
// never interprets status codes or content; that is the Client's job.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport issues the vendor's three HTTP operations and returns raw
// response envelopes.
type Transport struct {
	baseURL   string
	version   string
	accessKey string
	doer      HTTPDoer
	logger    zerolog.Logger
}

// NewTransport builds a transport bound to a base URL, version segment
// and access key. The access key rides along as a query parameter on
// every request.
func NewTransport(baseURL, version, accessKey string, doer HTTPDoer, logger zerolog.Logger) *Transport {
	return &Transport{
		baseURL:   baseURL,
		version:   version,
		accessKey: accessKey,
		doer:      doer,
		logger:    logger,
	}
}

// PlanRoutes submits an encoded route plan for optimization.
func (t *Transport) PlanRoutes(ctx context.Context, body []byte) (*RawResponse, error) {
	return t.post(ctx, endpointPlanRoutes, body)
}

// StopPlanning submits a stop request body ({"requestId": ...}).
func (t *Transport) StopPlanning(ctx context.Context, body []byte) (*RawResponse, error) {
	return t.post(ctx, endpointStopPlanning, body)
}

// GetResult fetches the current outcome of a plan optimization.
func (t *Transport) GetResult(ctx context.Context, requestID string) (*RawResponse, error) {
	q := url.Values{}
	q.Set("requestId", requestID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.endpointURL(endpointGetResult, q), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	return t.roundTrip(req, endpointGetResult)
}

func (t *Transport) post(ctx context.Context, endpoint string, body []byte) (*RawResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpointURL(endpoint, url.Values{}), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return t.roundTrip(req, endpoint)
}

func (t *Transport) endpointURL(endpoint string, q url.Values) string {
	q.Set("key", t.accessKey)
	return fmt.Sprintf("%s/%s/%s?%s", t.baseURL, t.version, endpoint, q.Encode())
}

func (t *Transport) roundTrip(req *http.Request, endpoint string) (*RawResponse, error) {
	resp, err := t.doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", endpoint, err)
	}

	t.logger.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Int("body_bytes", len(body)).
		Msg("optimoroute response")

	return &RawResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
