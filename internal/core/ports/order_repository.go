// Package ports defines the contracts between the order core and
// infrastructure. Repositories, the unit of work, and the courier client
// live behind these interfaces so adapters can be swapped in tests.
package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The update is conditional on the version the aggregate was loaded
	// with; a concurrent change surfaces as errs.ErrVersionIsInvalid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order regardless of status.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// ExistsByOrderTableAndStatusNot reports whether the given table still
	// has at least one order whose status differs from the given status.
	// Used to decide whether completing an eat-in order releases the table.
	ExistsByOrderTableAndStatusNot(ctx context.Context, tableID kernel.UUID, status order.Status) (bool, error)
}
