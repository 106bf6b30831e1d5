package queries

import (
	"context"
	"database/sql"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves the full order listing from the database.
// Reads rows directly instead of rehydrating aggregates.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders with their line items.
// Results are sorted by order ID for consistent output.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, index, err := h.fetchOrders(ctx)
	if err != nil {
		return nil, err
	}

	if err = h.attachLineItems(ctx, orders, index); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetAllOrdersQueryHandler) fetchOrders(ctx context.Context) ([]GetAllOrdersQueryResponse, map[uuid.UUID]int, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_type,
			status,
			delivery_address,
			order_table_id
		FROM orders
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	orders := make([]GetAllOrdersQueryResponse, 0)
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var (
			id              uuid.UUID
			orderType       int
			status          int
			deliveryAddress sql.NullString
			orderTableID    *uuid.UUID
		)

		if err = rows.Scan(&id, &orderType, &status, &deliveryAddress, &orderTableID); err != nil {
			return nil, nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}

		resp := GetAllOrdersQueryResponse{
			ID:              orderID,
			OrderType:       order.Type(orderType).String(),
			Status:          order.Status(status).String(),
			DeliveryAddress: deliveryAddress.String,
			LineItems:       make([]LineItemResponse, 0),
		}

		if orderTableID != nil {
			tableID, tableErr := kernel.UUIDFromBytes((*orderTableID)[:])
			if tableErr != nil {
				return nil, nil, tableErr
			}
			resp.OrderTableID = &tableID
		}

		index[id] = len(orders)
		orders = append(orders, resp)
	}

	return orders, index, rows.Err()
}

func (h GetAllOrdersQueryHandler) attachLineItems(ctx context.Context, orders []GetAllOrdersQueryResponse, index map[uuid.UUID]int) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			menu_id,
			quantity,
			price
		FROM order_line_items
		ORDER BY id
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID  uuid.UUID
			menuID   uuid.UUID
			quantity int64
			price    int64
		)

		if err = rows.Scan(&orderID, &menuID, &quantity, &price); err != nil {
			return err
		}

		i, ok := index[orderID]
		if !ok {
			continue
		}

		itemMenuID, idErr := kernel.UUIDFromBytes(menuID[:])
		if idErr != nil {
			return idErr
		}

		orders[i].LineItems = append(orders[i].LineItems, LineItemResponse{
			MenuID:   itemMenuID,
			Quantity: quantity,
			Price:    price,
		})
		orders[i].Total += price * quantity
	}

	return rows.Err()
}
