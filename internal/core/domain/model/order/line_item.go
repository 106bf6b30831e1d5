package order

import (
	"kitchen/internal/core/domain/model/kernel"
)

// LineItem is one menu selection within an order. The price is snapshotted at
// order time and never re-derived afterwards; the create-time validator checks
// it against the live menu price before the order is persisted.
//
// Quantity carries a sign. Negative quantities are rejected for takeout and
// delivery orders during validation, but deliberately tolerated for eat-in
// orders (see services.OrderValidator).
//
// LineItem is immutable once the order is created.
type LineItem struct {
	menuID   kernel.UUID
	quantity int64
	price    kernel.Price
}

// NewLineItem creates a line item for the given menu.
// The menu id must be a constructed UUID; the sign of quantity is not checked
// here because the policy depends on the order channel.
func NewLineItem(menuID kernel.UUID, quantity int64, price kernel.Price) (LineItem, error) {
	if err := menuID.Validate(); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		menuID:   menuID,
		quantity: quantity,
		price:    price,
	}, nil
}

// MenuID returns the id of the referenced menu.
func (li LineItem) MenuID() kernel.UUID {
	return li.menuID
}

// Quantity returns the ordered quantity, sign included.
func (li LineItem) Quantity() int64 {
	return li.quantity
}

// Price returns the price snapshotted at order time.
func (li LineItem) Price() kernel.Price {
	return li.price
}

// Total returns price multiplied by quantity, in minor units.
func (li LineItem) Total() int64 {
	return li.price.MultiplyQuantity(li.quantity)
}
