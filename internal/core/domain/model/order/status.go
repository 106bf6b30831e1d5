package order

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements the state
// machine
//
//	Waiting ──> Accepted ──> Served ──┬──────────────────────────> Completed
//	                                  │                               ^
//	                                  └──> Delivering ──> Delivered ──┘
//
// The upper path applies to eat-in and takeout orders, the lower one to
// delivery orders. Waiting is the initial state, Completed the terminal one.
// Each transition method returns the next status or an invalid-state error;
// none of them mutates the receiver.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Waiting is the initial status of a freshly created order, before the
	// kitchen has accepted it.
	Waiting

	// Accepted indicates the kitchen has taken the order. For delivery orders
	// a courier pickup has been requested at this point.
	Accepted

	// Served indicates the food is ready and handed over (to the guest, the
	// counter, or the courier staging area).
	Served

	// Delivering indicates a courier is on the way. Delivery orders only.
	Delivering

	// Delivered indicates the courier has dropped off the order. Delivery
	// orders only.
	Delivered

	// Completed is the terminal status with no further transitions.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Waiting:    "WAITING",
		Accepted:   "ACCEPTED",
		Served:     "SERVED",
		Delivering: "DELIVERING",
		Delivered:  "DELIVERED",
		Completed:  "COMPLETED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Waiting:    "WAITING",
		Accepted:   "ACCEPTED",
		Served:     "SERVED",
		Delivering: "DELIVERING",
		Delivered:  "DELIVERED",
		Completed:  "COMPLETED",
	}
}

// StatusFromString parses the wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"order status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks that the value belongs to the closed set of statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("%d is not a valid order status", s),
		)
	}
	return nil
}

// String implements fmt.Stringer. Invalid values render as "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Accept transitions Waiting to Accepted.
func (s Status) Accept() (Status, error) {
	if s != Waiting {
		return 0, invalidTransition(s, "accept")
	}
	return Accepted, nil
}

// Serve transitions Accepted to Served.
func (s Status) Serve() (Status, error) {
	if s != Accepted {
		return 0, invalidTransition(s, "serve")
	}
	return Served, nil
}

// StartDelivery transitions Served to Delivering. The caller is responsible
// for ensuring the order is a delivery order.
func (s Status) StartDelivery() (Status, error) {
	if s != Served {
		return 0, invalidTransition(s, "start delivery for")
	}
	return Delivering, nil
}

// CompleteDelivery transitions Delivering to Delivered.
func (s Status) CompleteDelivery() (Status, error) {
	if s != Delivering {
		return 0, invalidTransition(s, "complete delivery for")
	}
	return Delivered, nil
}

// Complete transitions into the terminal Completed status. The required
// current status depends on the order channel: delivery orders complete from
// Delivered, eat-in and takeout orders complete straight from Served.
func (s Status) Complete(orderType Type) (Status, error) {
	required := Served
	if orderType == TypeDelivery {
		required = Delivered
	}

	if s != required {
		return 0, invalidTransition(s, "complete")
	}
	return Completed, nil
}

func invalidTransition(s Status, action string) error {
	return errs.NewInvalidStateErrorWithCause(
		"order status",
		fmt.Errorf("%s is not a valid status to %s an order", s.String(), action),
	)
}
