package optimo

import "errors"

// Sentinel errors for vendor responses.
var (
	// ErrRequestNotFound indicates the vendor knows no plan under the
	// given request id.
	ErrRequestNotFound = errors.New("request id not found")
	// ErrNilRoutePlan indicates Plan was called without a route plan.
	ErrNilRoutePlan = errors.New("route plan must not be nil")
)

// Vendor error codes this client interprets.
const (
	codePlanningInProgress = "ERR_PLANNING_IN_PROGRESS"
	codeRequestNotExisting = "ERR_REQ_NOT_EXISTING"
)

// Error is a failure reported by the vendor: the HTTP call itself
// succeeded but the response envelope's success flag was false.
type Error struct {
	Code    string // vendor error code, e.g. "ERR_REQ_NOT_EXISTING"
	Message string // vendor's human-readable message
	Err     error  // sentinel for known codes, nil otherwise
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return "optimoroute error " + e.Code
	}
	return "optimoroute error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ConfigError reports an invalid client construction parameter.
type ConfigError struct {
	Param   string
	Message string
}

func (e *ConfigError) Error() string {
	return "'" + e.Param + "' " + e.Message
}
