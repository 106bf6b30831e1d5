package kernel

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Price is a monetary amount expressed in minor currency units (e.g. won or
// cents), stored exactly as an integer so snapshot prices and menu prices can
// be compared without rounding. A Price itself is never negative; arithmetic
// results such as line totals may be, because quantities can carry a sign.
//
// The zero value is a valid zero amount.
type Price struct {
	amount int64
}

// NewPrice creates a Price from an amount in minor units.
// Negative amounts are rejected.
func NewPrice(amount int64) (Price, error) {
	if amount < 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%d is negative", amount),
		)
	}
	return Price{amount: amount}, nil
}

// Amount returns the amount in minor units.
func (p Price) Amount() int64 {
	return p.amount
}

// IsEqual reports exact equality of two amounts.
func (p Price) IsEqual(other Price) bool {
	return p.amount == other.amount
}

// MultiplyQuantity scales the amount by a line-item quantity.
// The result is returned as a raw amount because it may be negative.
func (p Price) MultiplyQuantity(quantity int64) int64 {
	return p.amount * quantity
}

// Add returns the sum of two prices.
func (p Price) Add(other Price) Price {
	return Price{amount: p.amount + other.amount}
}

// String implements fmt.Stringer.
func (p Price) String() string {
	return fmt.Sprintf("%d", p.amount)
}
