package kernel

import (
	"math"

	"eats/internal/pkg/errs"
)

// Price is an amount in minor currency units (cents). It is never negative, and
// sums are exact: no rounding, conversion or discount ever applies.
type Price int64

// ZeroPrice is the neutral element of Add.
const ZeroPrice Price = 0

// NewPrice validates amount as a price.
func NewPrice(amount int64) (Price, error) {
	p := Price(amount)
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p, nil
}

// Validate rejects negative amounts, which can only come from corrupted catalog data.
func (p Price) Validate() error {
	if p < 0 {
		return errs.NewValueIsOutOfRangeError("price", int64(p), 0, int64(math.MaxInt64))
	}
	return nil
}

// Add returns p + other, saturating at math.MaxInt64 so totals never wrap negative.
func (p Price) Add(other Price) Price {
	if other > 0 && p > Price(math.MaxInt64)-other {
		return Price(math.MaxInt64)
	}
	return p + other
}

func (p Price) Int64() int64 {
	return int64(p)
}
