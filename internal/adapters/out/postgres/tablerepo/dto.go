// Package tablerepo persists restaurant tables. The order core reads
// occupancy and writes it back only when releasing a table.
package tablerepo

import (
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/table"

	"github.com/google/uuid"
)

// OrderTableDTO represents the database structure of a restaurant table.
type OrderTableDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:text"`
	NumberOfGuests int
	Occupied       bool
}

// TableName specifies the database table name for order table entities.
func (OrderTableDTO) TableName() string {
	return "order_tables"
}

// fromDomain converts a table entity to its database representation.
func fromDomain(orderTable *table.OrderTable) OrderTableDTO {
	return OrderTableDTO{
		ID:             orderTable.ID().Bytes(),
		Name:           orderTable.Name(),
		NumberOfGuests: orderTable.NumberOfGuests(),
		Occupied:       orderTable.IsOccupied(),
	}
}

// toDomain converts a database DTO to a table entity.
func toDomain(dto OrderTableDTO) (*table.OrderTable, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return table.RestoreOrderTable(id, dto.Name, dto.NumberOfGuests, dto.Occupied)
}
