package plan

import (
	"fmt"
	"net/url"
)

// Balancing controls whether the vendor balances workload across drivers.
type Balancing string

// Balancing modes.
const (
	BalancingOff     Balancing = "OFF"
	BalancingOn      Balancing = "ON"
	BalancingOnForce Balancing = "ON_FORCE"
)

// BalanceBy selects the quantity workload balancing operates on.
type BalanceBy string

// Balancing criteria: working time or number of orders.
const (
	BalanceByWorkTime   BalanceBy = "WT"
	BalanceByOrderCount BalanceBy = "NUM"
)

// OptimizationParameters tune the vendor's optimization run.
type OptimizationParameters struct {
	ServiceOutsideServiceAreas bool
	Balancing                  Balancing
	BalanceBy                  BalanceBy
	BalancingFactor            float64
}

// NewOptimizationParameters returns the vendor's defaults.
func NewOptimizationParameters() *OptimizationParameters {
	return &OptimizationParameters{
		ServiceOutsideServiceAreas: false,
		Balancing:                  BalancingOnForce,
		BalanceBy:                  BalanceByWorkTime,
		BalancingFactor:            0.3,
	}
}

func (p *OptimizationParameters) Validate() error {
	const entity = "OptimizationParameters"
	switch p.Balancing {
	case BalancingOff, BalancingOn, BalancingOnForce:
	default:
		return valueError(entity, "Balancing", "must be one of ('OFF', 'ON', 'ON_FORCE')")
	}
	switch p.BalanceBy {
	case BalanceByWorkTime, BalanceByOrderCount:
	default:
		return valueError(entity, "BalanceBy", "must be one of ('WT', 'NUM')")
	}
	if !finite(p.BalancingFactor) || p.BalancingFactor < 0 || p.BalancingFactor > 1 {
		return valueError(entity, "BalancingFactor", "must be within [0.0, 1.0]")
	}
	return nil
}

func (p *OptimizationParameters) Wire() (any, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return map[string]any{
		"serviceOutsideServiceAreas": p.ServiceOutsideServiceAreas,
		"balancing":                  string(p.Balancing),
		"balanceBy":                  string(p.BalanceBy),
		"balancingFactor":            p.BalancingFactor,
	}, nil
}

// RoutePlan is the top-level request unit submitted for optimization,
// bundling orders, drivers and plan-wide constraints.
type RoutePlan struct {
	RequestID         string
	CallbackURL       string
	StatusCallbackURL string
	Orders            []*Order
	Drivers           []*Driver

	// NoLoadCapacities is the number of load capacity dimensions the
	// vendor should track, between 0 and 4. Nil means unset.
	NoLoadCapacities *int

	OptimizationParameters *OptimizationParameters
}

// NewRoutePlan returns a plan with default optimization parameters.
// Orders and drivers are appended by the caller before validation.
func NewRoutePlan(requestID, callbackURL, statusCallbackURL string) *RoutePlan {
	return &RoutePlan{
		RequestID:              requestID,
		CallbackURL:            callbackURL,
		StatusCallbackURL:      statusCallbackURL,
		OptimizationParameters: NewOptimizationParameters(),
	}
}

// Validate checks the plan structurally, then verifies that every driver
// reference held by an order resolves to a driver present in the plan.
func (p *RoutePlan) Validate() error {
	const entity = "RoutePlan"
	if p.RequestID == "" {
		return valueError(entity, "RequestID", "cannot be an empty string")
	}
	if err := validateURL(entity, "CallbackURL", p.CallbackURL); err != nil {
		return err
	}
	if err := validateURL(entity, "StatusCallbackURL", p.StatusCallbackURL); err != nil {
		return err
	}
	if len(p.Orders) == 0 {
		return valueError(entity, "Orders", "must contain at least 1 element")
	}
	for _, o := range p.Orders {
		if o == nil {
			return typeError(entity, "Orders", "must not contain nil elements")
		}
		if err := o.Validate(); err != nil {
			return err
		}
	}
	if len(p.Drivers) == 0 {
		return valueError(entity, "Drivers", "must contain at least 1 element")
	}
	for _, d := range p.Drivers {
		if d == nil {
			return typeError(entity, "Drivers", "must not contain nil elements")
		}
		if err := d.Validate(); err != nil {
			return err
		}
	}
	if p.NoLoadCapacities != nil {
		if n := *p.NoLoadCapacities; n < 0 || n > 4 {
			return valueError(entity, "NoLoadCapacities", "must be between 0-4")
		}
	}
	if p.OptimizationParameters != nil {
		if err := p.OptimizationParameters.Validate(); err != nil {
			return err
		}
	}
	return p.checkDriverReferences()
}

// checkDriverReferences runs after structural validation, so every order
// and driver is known to be individually valid here.
func (p *RoutePlan) checkDriverReferences() error {
	known := make(map[string]struct{}, len(p.Drivers))
	for _, d := range p.Drivers {
		known[d.ID] = struct{}{}
	}
	for _, o := range p.Orders {
		if !o.AssignedTo.IsZero() {
			if _, ok := known[o.AssignedTo.ID()]; !ok {
				return &ReferenceError{
					OrderID:  o.ID,
					Field:    "AssignedTo",
					DriverID: o.AssignedTo.ID(),
				}
			}
		}
		if o.SchedulingInfo != nil {
			id := o.SchedulingInfo.ScheduledDriver.ID()
			if _, ok := known[id]; !ok {
				return &ReferenceError{
					OrderID:  o.ID,
					Field:    "SchedulingInfo.ScheduledDriver",
					DriverID: id,
				}
			}
		}
	}
	return nil
}

func (p *RoutePlan) Wire() (any, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	orders := make([]any, 0, len(p.Orders))
	for _, o := range p.Orders {
		ow, err := o.Wire()
		if err != nil {
			return nil, err
		}
		orders = append(orders, ow)
	}
	drivers := make([]any, 0, len(p.Drivers))
	for _, d := range p.Drivers {
		dw, err := d.Wire()
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, dw)
	}
	m := map[string]any{
		"requestId":      p.RequestID,
		"callback":       p.CallbackURL,
		"statusCallback": p.StatusCallbackURL,
		"orders":         orders,
		"drivers":        drivers,
	}
	if p.NoLoadCapacities != nil {
		m["noLoadCapacities"] = *p.NoLoadCapacities
	}
	if p.OptimizationParameters != nil {
		opw, err := p.OptimizationParameters.Wire()
		if err != nil {
			return nil, err
		}
		m["optimizationParameters"] = opw
	}
	return m, nil
}

func validateURL(entity, field, raw string) error {
	if raw == "" {
		return valueError(entity, field, "cannot be an empty string")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return valueError(entity, field, fmt.Sprintf("is not a valid url: %v", err))
	}
	if u.Scheme == "" {
		return valueError(entity, field, "does not define a protocol scheme")
	}
	return nil
}
