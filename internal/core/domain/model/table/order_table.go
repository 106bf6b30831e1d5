// Package table holds the OrderTable entity. Table management (seating,
// guest counts) lives outside the order core; the core reads occupancy to
// admit eat-in orders and clears the table on full turnover.
package table

import (
	"errors"
	"fmt"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

// ErrOrderTableIsNotConstructed is returned when an OrderTable instance was
// not created through NewOrderTable or RestoreOrderTable.
var ErrOrderTableIsNotConstructed = errors.New("OrderTable must be created via NewOrderTable or RestoreOrderTable")

// OrderTable is a physical table in the restaurant. The occupied flag gates
// eat-in order creation; Clear releases the table once every order bound to
// it has completed.
type OrderTable struct {
	id             kernel.UUID
	name           string
	numberOfGuests int
	occupied       bool

	isConstructed bool
}

// NewOrderTable creates an unoccupied table with zero guests.
func NewOrderTable(id kernel.UUID, name string) (*OrderTable, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &OrderTable{
		id:            id,
		name:          name,
		isConstructed: true,
	}, nil
}

// RestoreOrderTable reconstructs an OrderTable from persistence.
func RestoreOrderTable(id kernel.UUID, name string, numberOfGuests int, occupied bool) (*OrderTable, error) {
	if numberOfGuests < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"number of guests",
			fmt.Errorf("%d is negative", numberOfGuests),
		)
	}

	t, err := NewOrderTable(id, name)
	if err != nil {
		return nil, err
	}

	t.numberOfGuests = numberOfGuests
	t.occupied = occupied
	return t, nil
}

// Validate ensures the OrderTable instance was properly constructed.
func (t *OrderTable) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrOrderTableIsNotConstructed
	}
	return nil
}

// ID returns the table's unique identifier.
func (t *OrderTable) ID() kernel.UUID {
	return t.id
}

// Name returns the table's display name.
func (t *OrderTable) Name() string {
	return t.name
}

// NumberOfGuests returns the seated guest count.
func (t *OrderTable) NumberOfGuests() int {
	return t.numberOfGuests
}

// IsOccupied reports whether guests are currently seated.
func (t *OrderTable) IsOccupied() bool {
	return t.occupied
}

// Clear releases the table after full turnover: no guests, not occupied.
func (t *OrderTable) Clear() {
	t.numberOfGuests = 0
	t.occupied = false
}
