package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// LineItemSpec carries one requested line item as received from the caller.
// Price is the amount the caller believes the menu costs; admission rejects
// the order when it disagrees with the catalog.
type LineItemSpec struct {
	MenuID   kernel.UUID
	Quantity int64
	Price    int64
}

// CreateOrderCommand represents a request to register a new order.
// Encapsulates the sales channel, requested line items, and the
// channel-specific destination (delivery address or table).
//
// Example:
//
//	orderID := kernel.NewUUID()
//	items := []LineItemSpec{{MenuID: menuID, Quantity: 2, Price: 120000}}
//	cmd, err := NewCreateOrderCommand(orderID, order.TypeDelivery, items, "123 Main Street", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	orderType       order.Type
	lineItems       []order.LineItem
	deliveryAddress string
	tableID         *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the order id, the sales channel, and each line item's menu
// reference and price sign. Channel-specific rules (address, table,
// catalog agreement) are checked by the handler inside the transaction.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderType order.Type,
	lineItems []LineItemSpec,
	deliveryAddress string,
	tableID *kernel.UUID,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setOrderType(orderType),
		orderCommand.setLineItems(lineItems),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.deliveryAddress = deliveryAddress
	if tableID != nil {
		id := *tableID
		orderCommand.tableID = &id
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderType returns the sales channel the order goes through.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// LineItems returns the requested line items.
func (c CreateOrderCommand) LineItems() []order.LineItem {
	return c.lineItems
}

// DeliveryAddress returns the destination for delivery orders.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// TableID returns the target table for eat-in orders, nil otherwise.
func (c CreateOrderCommand) TableID() *kernel.UUID {
	return c.tableID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setLineItems(specs []LineItemSpec) error {
	items := make([]order.LineItem, 0, len(specs))
	for _, spec := range specs {
		price, err := kernel.NewPrice(spec.Price)
		if err != nil {
			return err
		}

		item, err := order.NewLineItem(spec.MenuID, spec.Quantity, price)
		if err != nil {
			return err
		}

		items = append(items, item)
	}

	c.lineItems = items
	return nil
}
