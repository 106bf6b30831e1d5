package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
)

// CourierDispatchClient requests a courier from the external delivery
// service. Dispatch happens exactly once per order, at acceptance.
type CourierDispatchClient interface {
	// RequestDelivery asks the delivery service to pick up the order.
	// The amount is the order total, used by the service for rider payout.
	RequestDelivery(ctx context.Context, orderID kernel.UUID, amount int64, deliveryAddress string) error
}
