// Package optimo is a typed client for the OptimoRoute route-planning
// HTTP API. It validates and serializes route plans built with the plan
// package, submits them for optimization, polls for results and stops
// running optimizations. All planning computation happens at the vendor;
// this package only models, checks and transports the requests.
package optimo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/optimoroute/optimo-go/plan"
)

// Client is the high-level OptimoRoute API client.
//
// Every call performs at most one blocking HTTP round trip and holds no
// state about outstanding plans: the plan lifecycle
// (submitted, in progress, completed/failed, stopped) lives entirely at
// the vendor and is observed through Get.
type Client struct {
	transport *Transport
	logger    zerolog.Logger
}

// NewClient validates cfg and returns a client. Configuration mistakes
// fail here, before any network call is attempted.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	doer := cfg.HTTPClient
	if doer == nil {
		doer = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		transport: NewTransport(cfg.BaseURL, cfg.Version, cfg.AccessKey, doer, cfg.Logger),
		logger:    cfg.Logger,
	}, nil
}

// Transport exposes the underlying raw transport for callers that need
// the unprocessed response envelopes.
func (c *Client) Transport() *Transport {
	return c.transport
}

// Plan validates rp, serializes it and submits it for optimization.
// A nil or invalid plan is rejected before any transport call. A vendor
// rejection surfaces as *Error.
func (c *Client) Plan(ctx context.Context, rp *plan.RoutePlan) error {
	if rp == nil {
		return ErrNilRoutePlan
	}
	if err := rp.Validate(); err != nil {
		return err
	}

	body, err := plan.Marshal(rp)
	if err != nil {
		return err
	}

	c.logger.Debug().
		Str("request_id", rp.RequestID).
		Int("orders", len(rp.Orders)).
		Int("drivers", len(rp.Drivers)).
		Msg("submitting route plan")

	raw, err := c.transport.PlanRoutes(ctx, body)
	if err != nil {
		return err
	}
	return c.checkEnvelope(raw)
}

// Stop aborts the running optimization identified by requestID.
func (c *Client) Stop(ctx context.Context, requestID string) error {
	body, err := json.Marshal(map[string]string{"requestId": requestID})
	if err != nil {
		return fmt.Errorf("encoding stop request: %w", err)
	}

	raw, err := c.transport.StopPlanning(ctx, body)
	if err != nil {
		return err
	}
	return c.checkEnvelope(raw)
}

// Get polls the outcome of the optimization identified by requestID.
// While the vendor is still planning it returns (nil, nil): no result
// yet, but nothing went wrong either. A finished run returns its Result;
// an unknown request id returns an *Error wrapping ErrRequestNotFound.
func (c *Client) Get(ctx context.Context, requestID string) (*Result, error) {
	raw, err := c.transport.GetResult(ctx, requestID)
	if err != nil {
		return nil, err
	}

	var resp getResponse
	if err := json.Unmarshal(raw.Body, &resp); err != nil {
		return nil, fmt.Errorf("decoding get_result response: %w", err)
	}

	if !resp.Success {
		if resp.Code == codePlanningInProgress {
			c.logger.Debug().
				Str("request_id", requestID).
				Msg("planning still in progress")
			return nil, nil
		}
		return nil, vendorError(resp.envelope)
	}

	result := &Result{
		RequestID:    resp.RequestID,
		CreationTime: resp.CreationTime,
	}
	if resp.Result != nil {
		result.Routes = resp.Result.Routes
		result.UnservedOrders = resp.Result.UnservedOrders
	}
	return result, nil
}

func (c *Client) checkEnvelope(raw *RawResponse) error {
	var env envelope
	if err := json.Unmarshal(raw.Body, &env); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if !env.Success {
		return vendorError(env)
	}
	return nil
}

func vendorError(env envelope) error {
	e := &Error{Code: env.Code, Message: env.Message}
	if env.Code == codeRequestNotExisting {
		e.Err = ErrRequestNotFound
	}
	return e
}
