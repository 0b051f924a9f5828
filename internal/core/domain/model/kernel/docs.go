// Package kernel provides shared value objects used across the domain model.
//
// It currently contains the UUID value object, which wraps google/uuid with
// constructor enforcement so zero-value identifiers are caught by Validate
// before they reach persistence.
package kernel
