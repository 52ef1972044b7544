package optimo

import "github.com/optimoroute/optimo-go/plan"

// Result is the outcome of a finished plan optimization.
type Result struct {
	RequestID string

	// CreationTime is the vendor's second-resolution creation stamp,
	// kept verbatim.
	CreationTime string

	Routes         []DriverRoute
	UnservedOrders []UnservedOrder
}

// DriverRoute is the ordered list of stops planned for one driver.
type DriverRoute struct {
	DriverID string `json:"driverId"`
	Orders   []Stop `json:"orders"`
}

// Stop is a single scheduled order on a driver's route.
type Stop struct {
	ID          string         `json:"id"`
	ScheduledAt plan.Timestamp `json:"scheduledAt"`
}

// UnservedOrder is an order the optimizer could not place on any route.
type UnservedOrder struct {
	ID string `json:"id"`
}

// envelope is the common part of every vendor response.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// getResponse is the full get_result payload.
type getResponse struct {
	envelope
	RequestID    string         `json:"requestId"`
	CreationTime string         `json:"creationTime"`
	Result       *resultPayload `json:"result"`
}

type resultPayload struct {
	Routes         []DriverRoute   `json:"routes"`
	UnservedOrders []UnservedOrder `json:"unservedOrders"`
}
