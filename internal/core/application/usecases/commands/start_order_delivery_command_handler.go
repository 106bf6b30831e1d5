package commands

import (
	"context"
)

// StartOrderDeliveryCommandHandler moves a served delivery order into
// "delivering" status. Orders on other channels have no delivery phase and
// are rejected by the aggregate.
type StartOrderDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartOrderDeliveryCommandHandler creates a handler for delivery start operations.
func NewStartOrderDeliveryCommandHandler(uowFactory OrderUoWFactory) StartOrderDeliveryCommandHandler {
	return StartOrderDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery start command.
func (h *StartOrderDeliveryCommandHandler) Handle(ctx context.Context, cmd StartOrderDeliveryCommand) error {
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

	if err = aggregate.StartDelivery(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
