package kernel

import (
	"strconv"

	"eats/internal/pkg/errs"
)

// ID identifies a persisted entity. Identities are assigned by the store and are
// always positive; the zero ID means "not persisted yet".
type ID int64

// NewID validates raw as an identity.
func NewID(raw int64) (ID, error) {
	id := ID(raw)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// ParseID parses a decimal identity, as found in URLs and headers.
func ParseID(s string) (ID, error) {
	raw, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(raw)
}

// Validate reports whether id is a persisted identity.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("id", int64(id), 1, "max int64")
	}
	return nil
}

// IsZero reports whether the identity has not been assigned yet.
func (id ID) IsZero() bool {
	return id == 0
}

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
