package services

import (
	"context"
	"fmt"
	"strings"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/errs"
)

// OrderValidator is a domain service that decides whether a new order may be
// admitted. It cross-checks each line item against the menu catalog and, for
// eat-in orders, the target table's occupancy.
//
// Admission rules:
//   - Every referenced menu must exist and be displayed
//   - Each line item's price must equal the current catalog price
//   - Quantities must be non-negative, except for eat-in orders
//   - Delivery orders need a non-blank delivery address
//   - Eat-in orders need an existing, occupied table
type OrderValidator struct {
	menus  ports.MenuRepository
	tables ports.OrderTableRepository
}

// NewOrderValidator creates an OrderValidator backed by the given repositories.
func NewOrderValidator(menus ports.MenuRepository, tables ports.OrderTableRepository) (OrderValidator, error) {
	if menus == nil {
		return OrderValidator{}, errs.NewValueIsRequiredError("menus")
	}
	if tables == nil {
		return OrderValidator{}, errs.NewValueIsRequiredError("tables")
	}

	return OrderValidator{menus: menus, tables: tables}, nil
}

// ValidateForCreate runs the full admission check against a newly built order.
// Checks run in a fixed sequence and the first failure wins.
func (v OrderValidator) ValidateForCreate(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := v.validateMenuCount(ctx, aggregate); err != nil {
		return err
	}

	for _, item := range aggregate.LineItems() {
		if err := v.validateLineItem(ctx, aggregate.Type(), item); err != nil {
			return err
		}
	}

	if aggregate.Type() == order.TypeDelivery {
		if strings.TrimSpace(aggregate.DeliveryAddress()) == "" {
			return errs.NewValueIsRequiredError("delivery address")
		}
	}

	if aggregate.Type() == order.TypeEatIn {
		if err := v.validateOrderTable(ctx, aggregate.TableID()); err != nil {
			return err
		}
	}

	return nil
}

// validateMenuCount bulk-fetches the referenced menus and requires one match
// per distinct menu id. Duplicate references to the same menu are allowed.
func (v OrderValidator) validateMenuCount(ctx context.Context, aggregate *order.Order) error {
	ids := distinctMenuIDs(aggregate.LineItems())

	menus, err := v.menus.FindAllByIDIn(ctx, ids)
	if err != nil {
		return err
	}

	if len(menus) != len(ids) {
		return errs.NewValueIsInvalidErrorWithCause(
			"order line items",
			fmt.Errorf("%d of %d referenced menus exist", len(menus), len(ids)),
		)
	}

	return nil
}

func (v OrderValidator) validateLineItem(ctx context.Context, orderType order.Type, item order.LineItem) error {
	if orderType != order.TypeEatIn && item.Quantity() < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is negative", item.Quantity()),
		)
	}

	m, err := v.menus.Get(ctx, item.MenuID())
	if err != nil {
		return err
	}

	if !m.IsDisplayed() {
		return errs.NewInvalidStateErrorWithCause(
			"menu",
			fmt.Errorf("menu %s is not displayed", m.ID()),
		)
	}

	if !m.Price().IsEqual(item.Price()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("line item price %d differs from menu price %d", item.Price().Amount(), m.Price().Amount()),
		)
	}

	return nil
}

func (v OrderValidator) validateOrderTable(ctx context.Context, tableID *kernel.UUID) error {
	if tableID == nil {
		return errs.NewValueIsRequiredError("order table id")
	}

	orderTable, err := v.tables.Get(ctx, *tableID)
	if err != nil {
		return err
	}

	if !orderTable.IsOccupied() {
		return errs.NewInvalidStateErrorWithCause(
			"order table",
			fmt.Errorf("table %s is not occupied", orderTable.ID()),
		)
	}

	return nil
}

func distinctMenuIDs(items []order.LineItem) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(items))
	ids := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.MenuID()]; ok {
			continue
		}
		seen[item.MenuID()] = struct{}{}
		ids = append(ids, item.MenuID())
	}
	return ids
}
