package parcel

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// Status represents the lifecycle stage of a parcel.
//
// The main line runs Created -> InStock -> Collected -> InTransit ->
// Delivered, with Cancelled and Returned as side branches reachable from any
// non-terminal stage. The engine deliberately does not enforce a transition
// graph: any valid status is accepted as a target (callers are trusted to
// request sane transitions), and only a change to the same status is treated
// as a no-op. Status validates enum membership, nothing more.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusCreated is the initial status of every parcel.
	StatusCreated

	// StatusInStock means the parcel is registered in a warehouse.
	StatusInStock

	// StatusCollected means a courier has picked the parcel up.
	// The first transition into this status stamps the collection time.
	StatusCollected

	// StatusInTransit means the parcel is on its way to the recipient.
	StatusInTransit

	// StatusDelivered means the parcel reached the recipient. Terminal.
	// The first transition into this status stamps the delivery time.
	StatusDelivered

	// StatusCancelled means the shipment was called off. Terminal.
	StatusCancelled

	// StatusReturned means the parcel went back to the sender. Terminal.
	StatusReturned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusCreated:   "Created",
		StatusInStock:   "InStock",
		StatusCollected: "Collected",
		StatusInTransit: "InTransit",
		StatusDelivered: "Delivered",
		StatusCancelled: "Cancelled",
		StatusReturned:  "Returned",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusCreated:   "Created",
		StatusInStock:   "InStock",
		StatusCollected: "Collected",
		StatusInTransit: "InTransit",
		StatusDelivered: "Delivered",
		StatusCancelled: "Cancelled",
		StatusReturned:  "Returned",
	}
}

// StatusFromString parses a status name as it appears over the wire.
// Returns an error for unknown names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks enum membership. StatusUnknown and out-of-range values
// are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// AllowsProductMutation reports whether the parcel's product list may be
// changed while in this status. Products are only mutable before collection,
// i.e. in Created or InStock.
func (s Status) AllowsProductMutation() bool {
	return s == StatusCreated || s == StatusInStock
}

// IsFinished reports whether the status is in the terminal-or-completed set
// {Delivered, Cancelled, Returned}. Finished parcels are never overdue.
func (s Status) IsFinished() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusReturned
}
