package order

import (
	"errors"
	"fmt"
	"slices"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a single customer purchase request. It owns
// the lifecycle transitions and every invariant that can be decided without
// repository lookups:
//
//   - a valid unique identifier
//   - a stated channel (Type), immutable after creation
//   - at least one line item, immutable after creation
//   - status moves only along the path defined on Status
//
// The delivery address and table reference are carried here but their
// channel-specific rules (non-blank address for delivery, existing occupied
// table for eat-in) are checked by services.OrderValidator, which also owns
// the menu catalog checks.
//
// Orders are never deleted; Completed is the terminal state.
type Order struct {
	id kernel.UUID

	// orderType is the channel the order was placed through. Immutable.
	orderType Type

	// status is the current state in the order lifecycle.
	status Status

	// lineItems is the ordered sequence of menu selections. Immutable.
	lineItems []LineItem

	// deliveryAddress is set for delivery orders only.
	deliveryAddress string

	// tableID references the occupied table for eat-in orders (nil otherwise).
	tableID *kernel.UUID

	// version is the optimistic concurrency token checked by the persistence
	// layer on every update.
	version int

	// isConstructed ensures the order was created via a constructor.
	isConstructed bool
}

// NewOrder creates a new Order in Waiting status.
//
// It enforces the intrinsic invariants: a valid id, a stated channel, and a
// non-empty line-item sequence. The delivery address and table reference are
// stored as given; repository-backed validation happens before persistence.
func NewOrder(
	id kernel.UUID,
	orderType Type,
	lineItems []LineItem,
	deliveryAddress string,
	tableID *kernel.UUID,
) (*Order, error) {
	order := &Order{
		status:        Waiting,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setType(orderType),
		order.setLineItems(lineItems),
		order.setTableID(tableID),
	); err != nil {
		return nil, err
	}

	order.deliveryAddress = deliveryAddress
	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its current
// status and version. It applies the same intrinsic checks as NewOrder plus
// status validation, guarding against corrupted rows.
func RestoreOrder(
	id kernel.UUID,
	orderType Type,
	status Status,
	lineItems []LineItem,
	deliveryAddress string,
	tableID *kernel.UUID,
	version int,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setType(orderType),
		order.setStatus(status),
		order.setLineItems(lineItems),
		order.setTableID(tableID),
	); err != nil {
		return nil, err
	}

	order.deliveryAddress = deliveryAddress
	order.version = version
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Called by repositories when persisting and rehydrating aggregates.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Type returns the order channel.
func (o *Order) Type() Type {
	return o.orderType
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// LineItems returns a copy of the line-item sequence in order.
func (o *Order) LineItems() []LineItem {
	return slices.Clone(o.lineItems)
}

// DeliveryAddress returns the delivery destination. Empty for non-delivery orders.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// TableID returns the referenced table id, or nil when the order is not bound
// to a table.
func (o *Order) TableID() *kernel.UUID {
	return o.tableID
}

// Version returns the optimistic concurrency token.
func (o *Order) Version() int {
	return o.version
}

// Total sums price times quantity over all line items, in minor units.
// The result is what is handed to the courier service on dispatch.
func (o *Order) Total() int64 {
	var total int64
	for _, item := range o.lineItems {
		total += item.Total()
	}
	return total
}

// Accept moves the order from Waiting to Accepted.
// Returns an invalid-state error for any other current status.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Serve moves the order from Accepted to Served.
func (o *Order) Serve() error {
	newStatus, err := o.status.Serve()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartDelivery moves a delivery order from Served to Delivering.
// Non-delivery orders fail with an invalid-state error regardless of status.
func (o *Order) StartDelivery() error {
	if o.orderType != TypeDelivery {
		return errs.NewInvalidStateErrorWithCause(
			"order type",
			fmt.Errorf("%s orders have no delivery phase", o.orderType),
		)
	}

	newStatus, err := o.status.StartDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// CompleteDelivery moves the order from Delivering to Delivered.
func (o *Order) CompleteDelivery() error {
	newStatus, err := o.status.CompleteDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete moves the order into the terminal Completed status. Delivery
// orders must be Delivered; eat-in and takeout orders must be Served.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete(o.orderType)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("order line items")
	}
	o.lineItems = slices.Clone(lineItems)
	return nil
}

func (o *Order) setTableID(tableID *kernel.UUID) error {
	if tableID == nil {
		return nil
	}
	if err := tableID.Validate(); err != nil {
		return err
	}
	id := *tableID
	o.tableID = &id
	return nil
}
