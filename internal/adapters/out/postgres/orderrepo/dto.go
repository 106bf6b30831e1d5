// Package orderrepo persists order aggregates. It maps the aggregate onto an
// orders row plus one order_line_items row per line item, and guards
// concurrent writes with a version column.
package orderrepo

import (
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderType       int
	Status          int        `gorm:"index"`
	DeliveryAddress string     `gorm:"type:text"`
	OrderTableID    *uuid.UUID `gorm:"type:uuid;index"`
	Version         int

	LineItems []LineItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one priced menu reference within an order.
// Line items are immutable once the order is created.
type LineItemDTO struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	MenuID   uuid.UUID `gorm:"type:uuid"`
	Quantity int64
	Price    int64
}

// TableName specifies the database table name for line item entities.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order aggregate to its database representation.
// The version column is filled by the repository, not here.
func fromDomain(aggregate *order.Order) OrderDTO {
	var tableID *uuid.UUID
	if id := aggregate.TableID(); id != nil {
		raw := id.Bytes()
		tableID = &raw
	}

	items := make([]LineItemDTO, 0, len(aggregate.LineItems()))
	for _, item := range aggregate.LineItems() {
		items = append(items, LineItemDTO{
			OrderID:  aggregate.ID().Bytes(),
			MenuID:   item.MenuID().Bytes(),
			Quantity: item.Quantity(),
			Price:    item.Price().Amount(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrderType:       int(aggregate.Type()),
		Status:          int(aggregate.Status()),
		DeliveryAddress: aggregate.DeliveryAddress(),
		OrderTableID:    tableID,
		Version:         aggregate.Version(),
		LineItems:       items,
	}
}

// toDomain converts a database DTO to an order aggregate via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var tableID *kernel.UUID
	if dto.OrderTableID != nil {
		tID, tableErr := kernel.UUIDFromBytes((*dto.OrderTableID)[:])
		if tableErr != nil {
			return nil, tableErr
		}
		tableID = &tID
	}

	items := make([]order.LineItem, 0, len(dto.LineItems))
	for _, itemDTO := range dto.LineItems {
		menuID, menuErr := kernel.UUIDFromBytes(itemDTO.MenuID[:])
		if menuErr != nil {
			return nil, menuErr
		}

		price, priceErr := kernel.NewPrice(itemDTO.Price)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewLineItem(menuID, itemDTO.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		order.Type(dto.OrderType),
		order.Status(dto.Status),
		items,
		dto.DeliveryAddress,
		tableID,
		dto.Version,
	)
}
