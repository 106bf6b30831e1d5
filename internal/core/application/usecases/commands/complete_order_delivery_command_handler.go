package commands

import (
	"context"
)

// CompleteOrderDeliveryCommandHandler moves a delivering order into
// "delivered" status.
type CompleteOrderDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteOrderDeliveryCommandHandler(uowFactory OrderUoWFactory) CompleteOrderDeliveryCommandHandler {
	return CompleteOrderDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery completion command.
func (h *CompleteOrderDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteOrderDeliveryCommand) error {
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

	if err = aggregate.CompleteDelivery(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
