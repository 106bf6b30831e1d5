// Package menu holds the read model of the menu catalog as the order core
// sees it. Menus are managed elsewhere; here they only answer whether a line
// item may reference them and at what price.
package menu

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
)

// ErrMenuIsNotConstructed is returned when a Menu instance was not created
// through NewMenu or RestoreMenu.
var ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu or RestoreMenu")

// Menu is a single orderable catalog entry. The displayed flag gates
// orderability: hidden menus exist but cannot appear in new orders.
// The order core never mutates menus.
type Menu struct {
	id        kernel.UUID
	name      string
	price     kernel.Price
	displayed bool

	isConstructed bool
}

// NewMenu creates a catalog entry with a valid id.
func NewMenu(id kernel.UUID, name string, price kernel.Price, displayed bool) (*Menu, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Menu{
		id:            id,
		name:          name,
		price:         price,
		displayed:     displayed,
		isConstructed: true,
	}, nil
}

// RestoreMenu reconstructs a Menu from persistence.
func RestoreMenu(id kernel.UUID, name string, price kernel.Price, displayed bool) (*Menu, error) {
	return NewMenu(id, name, price, displayed)
}

// Validate ensures the Menu instance was properly constructed.
func (m *Menu) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuIsNotConstructed
	}
	return nil
}

// ID returns the menu's unique identifier.
func (m *Menu) ID() kernel.UUID {
	return m.id
}

// Name returns the display name.
func (m *Menu) Name() string {
	return m.name
}

// Price returns the current catalog price.
func (m *Menu) Price() kernel.Price {
	return m.price
}

// IsDisplayed reports whether the menu may appear in new orders.
func (m *Menu) IsDisplayed() bool {
	return m.displayed
}
