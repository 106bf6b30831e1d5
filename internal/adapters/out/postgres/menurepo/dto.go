// Package menurepo reads the menu catalog. The order core only consumes
// menus, so the repository is read-only.
package menurepo

import (
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuDTO represents the database structure of a catalog entry.
type MenuDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:text"`
	Price     int64
	Displayed bool
}

// TableName specifies the database table name for menu entities.
func (MenuDTO) TableName() string {
	return "menus"
}

// toDomain converts a database DTO to a menu entity.
func toDomain(dto MenuDTO) (*menu.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenu(id, dto.Name, price, dto.Displayed)
}
