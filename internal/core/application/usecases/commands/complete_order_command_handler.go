package commands

import (
	"context"

	"kitchen/internal/core/domain/model/order"
)

// CompleteOrderCommandHandler moves an order into its terminal "completed"
// status. Completing the last open eat-in order on a table releases the
// table: occupancy drops and the guest count resets.
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
// Requires a UoWFactory because eat-in completion updates the table in the
// same transaction as the order.
func NewCompleteOrderCommandHandler(uowFactory UoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
// The table releases only when no other order on it is still open, so
// tables shared by several concurrent orders stay occupied until the last
// one closes.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Complete(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if aggregate.Type() == order.TypeEatIn && aggregate.TableID() != nil {
		if err = h.releaseTableIfIdle(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h *CompleteOrderCommandHandler) releaseTableIfIdle(ctx context.Context, uow UoW, aggregate *order.Order) error {
	tableID := *aggregate.TableID()

	hasOpenOrders, err := uow.OrderRepository().ExistsByOrderTableAndStatusNot(ctx, tableID, order.Completed)
	if err != nil {
		return err
	}
	if hasOpenOrders {
		return nil
	}

	tableRepo := uow.OrderTableRepository()
	orderTable, err := tableRepo.Get(ctx, tableID)
	if err != nil {
		return err
	}

	orderTable.Clear()
	return tableRepo.Update(ctx, orderTable)
}
