package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/table"
)

// OrderTableRepository defines access to restaurant tables. The order core
// reads occupancy on eat-in creation and clears tables on completion.
type OrderTableRepository interface {
	// Get retrieves a table by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such table exists.
	Get(ctx context.Context, id kernel.UUID) (*table.OrderTable, error)

	// Update persists changes to an existing table.
	Update(ctx context.Context, orderTable *table.OrderTable) error
}
