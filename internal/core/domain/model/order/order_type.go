package order

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Type identifies the order channel. It determines which lifecycle states
// apply and which creation rules are enforced.
type Type int

const (
	// TypeUnknown is the zero value and is never valid.
	TypeUnknown Type = iota

	// TypeEatIn is an order consumed at an occupied table in the restaurant.
	TypeEatIn

	// TypeTakeout is an order picked up at the counter.
	TypeTakeout

	// TypeDelivery is an order couriered to a delivery address.
	TypeDelivery
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:  "UNKNOWN",
		TypeEatIn:    "EAT_IN",
		TypeTakeout:  "TAKEOUT",
		TypeDelivery: "DELIVERY",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		TypeEatIn:    "EAT_IN",
		TypeTakeout:  "TAKEOUT",
		TypeDelivery: "DELIVERY",
	}
}

// TypeFromString parses the wire representation of an order channel
// ("EAT_IN", "TAKEOUT", "DELIVERY").
func TypeFromString(s string) (Type, error) {
	for t, str := range getValidTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"order type",
		fmt.Errorf("%q is not a valid order type", s),
	)
}

// Validate rejects the zero value (an order must state its channel) and any
// value outside the closed set.
func (t Type) Validate() error {
	if t == TypeUnknown {
		return errs.NewValueIsRequiredError("order type")
	}
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order type",
			fmt.Errorf("%d is not a valid order type", t),
		)
	}
	return nil
}

// String implements fmt.Stringer.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}
