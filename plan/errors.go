package plan

import (
	"errors"
	"fmt"
)

// Sentinel errors for plan validation and encoding.
var (
	// ErrInvalidType indicates a field holds a value of the wrong kind,
	// such as an unset required timestamp or an empty driver reference.
	ErrInvalidType = errors.New("invalid field type")
	// ErrInvalidValue indicates a field holds a value of the right kind
	// that the vendor's schema rejects (empty id, out-of-range number,
	// unknown enum member, empty required collection).
	ErrInvalidValue = errors.New("invalid field value")
	// ErrUnknownDriver indicates an order references a driver id that is
	// not part of the plan's driver list.
	ErrUnknownDriver = errors.New("unknown driver id")
	// ErrNotEncodable indicates a value the encoder does not recognize.
	ErrNotEncodable = errors.New("value is not encodable")
)

// FieldError reports a structural validation failure on a single field.
type FieldError struct {
	Entity  string // entity type name, e.g. "Order"
	Field   string // offending field, e.g. "Duration"
	Message string // what the schema expects
	Err     error  // ErrInvalidType or ErrInvalidValue
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("'%s.%s' %s", e.Entity, e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ReferenceError reports a dangling driver reference inside a route plan.
// It is a distinct kind from FieldError because it depends on whole-plan
// state rather than a single field.
type ReferenceError struct {
	OrderID  string // order holding the reference
	Field    string // "AssignedTo" or "SchedulingInfo.ScheduledDriver"
	DriverID string // the id that matched no driver
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("order %q: '%s' references driver %q which is not in the plan's drivers",
		e.OrderID, e.Field, e.DriverID)
}

func (e *ReferenceError) Unwrap() error {
	return ErrUnknownDriver
}

func typeError(entity, field, message string) error {
	return &FieldError{Entity: entity, Field: field, Message: message, Err: ErrInvalidType}
}

func valueError(entity, field, message string) error {
	return &FieldError{Entity: entity, Field: field, Message: message, Err: ErrInvalidValue}
}
