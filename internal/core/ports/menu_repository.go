package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
)

// MenuRepository defines read access to the menu catalog.
// The order core never writes menus.
type MenuRepository interface {
	// FindAllByIDIn retrieves the menus whose ids appear in the given set.
	// Ids with no matching menu are silently absent from the result.
	FindAllByIDIn(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error)

	// Get retrieves a single menu by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such menu exists.
	Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error)
}
