// Package plan models OptimoRoute planning requests as typed values.
//
// Entities are assembled builder-style: constructors fill in required
// fields and vendor defaults, every field stays exported and mutable, and
// validation is an explicit separate step. Wire projection always
// re-validates, so an invalid plan can never reach the serializer.
package plan

// Entity is the contract shared by every vendor schema value.
type Entity interface {
	// Validate checks the entity against the vendor's schema rules.
	// It stops at the first offending field and never mutates the entity.
	Validate() error

	// Wire returns the entity in the vendor's wire shape, using the
	// vendor's key names. It calls Validate first. Timestamps and
	// decimals are left as-is in the returned tree; Encode resolves them.
	Wire() (any, error)
}
