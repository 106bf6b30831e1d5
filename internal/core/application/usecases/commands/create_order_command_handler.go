package commands

import (
	"context"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders start in "waiting" status after passing catalog and table
// admission checks.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(orderID, order.TypeTakeout, items, "", nil)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now waiting for kitchen acceptance
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory because admission reads the menu catalog and, for
// eat-in orders, the target table within the same transaction.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Runs the admission checks and persists the order in "waiting" status.
// Uses a transaction so the catalog snapshot and the insert are consistent.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.OrderType(), cmd.LineItems(), cmd.DeliveryAddress(), cmd.TableID())
	if err != nil {
		return err
	}

	validator, err := services.NewOrderValidator(uow.MenuRepository(), uow.OrderTableRepository())
	if err != nil {
		return err
	}

	if err = validator.ValidateForCreate(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
