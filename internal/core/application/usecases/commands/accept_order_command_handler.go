package commands

import (
	"context"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
)

// AcceptOrderCommandHandler moves a waiting order into "accepted" status.
// For delivery orders it additionally requests a courier from the external
// delivery service, exactly once, after the status change is committed.
type AcceptOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	courierClient ports.CourierDispatchClient
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
// The courier client is called only for delivery orders.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory, courierClient ports.CourierDispatchClient) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory:    uowFactory,
		courierClient: courierClient,
	}
}

// Handle processes the acceptance command.
// The status change commits before the courier request goes out; a failed
// request surfaces to the caller while the order stays accepted, so the
// kitchen can retrigger dispatch without cooking twice.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	if err = aggregate.Accept(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if aggregate.Type() == order.TypeDelivery {
		return h.courierClient.RequestDelivery(ctx, aggregate.ID(), aggregate.Total(), aggregate.DeliveryAddress())
	}

	return nil
}
