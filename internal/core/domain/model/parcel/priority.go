package parcel

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// Priority is the declared urgency of a parcel. It carries no behavior in
// the lifecycle engine; it exists for filtering and display.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityNormal is the default priority.
	PriorityNormal

	// PriorityUrgent marks parcels that should be handled ahead of normal ones.
	PriorityUrgent

	// PriorityExpress marks parcels under a same-day commitment.
	PriorityExpress
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "Unknown",
		PriorityNormal:  "Normal",
		PriorityUrgent:  "Urgent",
		PriorityExpress: "Express",
	}
}

func getValidPriorityStrings() map[Priority]string {
	//nolint:exhaustive // PriorityUnknown is intentionally excluded as it's invalid
	return map[Priority]string{
		PriorityNormal:  "Normal",
		PriorityUrgent:  "Urgent",
		PriorityExpress: "Express",
	}
}

// PriorityFromString parses a priority name as it appears over the wire.
func PriorityFromString(s string) (Priority, error) {
	for priority, name := range getValidPriorityStrings() {
		if name == s {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a valid priority", s))
}

// Validate checks enum membership.
func (p Priority) Validate() error {
	if _, ok := getValidPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the human-readable name of the priority.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}
