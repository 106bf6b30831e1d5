package tablerepo

import (
	"context"
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/table"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderTableRepository implements OrderTableRepository using GORM.
type GormOrderTableRepository struct {
	db *gorm.DB
}

// NewGormOrderTableRepository creates a new GORM order table repository.
func NewGormOrderTableRepository(db *gorm.DB) *GormOrderTableRepository {
	return &GormOrderTableRepository{db: db}
}

// Get retrieves a table by ID.
func (r *GormOrderTableRepository) Get(ctx context.Context, id kernel.UUID) (*table.OrderTable, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderTableDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order table", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update saves occupancy changes of an existing table.
// Occupied and NumberOfGuests may be written as zero values, so the update
// selects its columns explicitly.
func (r *GormOrderTableRepository) Update(ctx context.Context, orderTable *table.OrderTable) error {
	if err := orderTable.Validate(); err != nil {
		return err
	}

	dto := fromDomain(orderTable)
	result := r.db.WithContext(ctx).Model(&OrderTableDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"number_of_guests": dto.NumberOfGuests,
			"occupied":         dto.Occupied,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order table", orderTable.ID().String())
	}

	return nil
}
