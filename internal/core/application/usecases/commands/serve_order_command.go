package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrServeOrderCommandIsNotConstructed = errors.New(
	"ServeOrderCommand must be created via NewServeOrderCommand constructor",
)

// ServeOrderCommand represents the kitchen finishing preparation of an order.
type ServeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewServeOrderCommand creates a command to mark an accepted order as served.
func NewServeOrderCommand(orderID kernel.UUID) (ServeOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ServeOrderCommand{}, err
	}

	return ServeOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ServeOrderCommand) Validate() error {
	return c.guard.Validate(ErrServeOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c ServeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
