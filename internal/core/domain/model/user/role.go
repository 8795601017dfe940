// Package user models the identity the ordering core reads from the auth collaborator:
// an ID and exactly one Role. Users are never created or mutated here.
package user

import (
	"fmt"

	"eats/internal/pkg/errs"
)

// Role classifies a user. It gates which orders the user sees and which
// status transitions the user may request.
type Role int

const (
	// Unknown is the invalid zero value.
	Unknown Role = iota
	Client
	Owner
	Delivery
)

var roleNames = map[Role]string{
	Client:   "Client",
	Owner:    "Owner",
	Delivery: "Delivery",
}

// Roles lists every valid role.
func Roles() []Role {
	return []Role{Client, Owner, Delivery}
}

// ParseRole converts the wire name of a role ("Client", "Owner", "Delivery").
func ParseRole(s string) (Role, error) {
	for role, name := range roleNames {
		if name == s {
			return role, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "Unknown"
}
