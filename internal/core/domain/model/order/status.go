package order

import (
	"fmt"

	"eats/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Pending ─> Cooking ─> Cooked ─> PickedUp ─> Delivered
//
// The arrows show the intended flow only. Transitions are gated by the acting
// role and the requested target, never by the current status.
type Status int

const (
	// Unknown is the invalid zero value.
	Unknown Status = iota
	Pending
	Cooking
	Cooked
	PickedUp
	Delivered
)

var statusNames = map[Status]string{
	Pending:   "Pending",
	Cooking:   "Cooking",
	Cooked:    "Cooked",
	PickedUp:  "PickedUp",
	Delivered: "Delivered",
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Cooking, Cooked, PickedUp, Delivered}
}

// ParseStatus converts a wire name such as "PickedUp".
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}
