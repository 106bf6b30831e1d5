package commands

import (
	"context"
)

// ServeOrderCommandHandler moves an accepted order into "served" status.
type ServeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewServeOrderCommandHandler creates a handler for serving operations.
func NewServeOrderCommandHandler(uowFactory OrderUoWFactory) ServeOrderCommandHandler {
	return ServeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the serve command.
func (h *ServeOrderCommandHandler) Handle(ctx context.Context, cmd ServeOrderCommand) error {
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

	if err = aggregate.Serve(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
