// Package queries contains read operations that bypass the domain model.
// Implements the Query side of the CQRS architecture with raw SQL for
// efficient data retrieval without aggregate reconstruction.
package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order with its line items.
// Backs the order listing endpoint used by kitchen displays.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("Found %d orders\n", len(orders))
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
// This is a parameterless query.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryResponse represents one order in the listing.
type GetAllOrdersQueryResponse struct {
	ID              kernel.UUID
	OrderType       string
	Status          string
	DeliveryAddress string
	OrderTableID    *kernel.UUID
	Total           int64
	LineItems       []LineItemResponse
}

// LineItemResponse represents one line item in an order listing.
type LineItemResponse struct {
	MenuID   kernel.UUID
	Quantity int64
	Price    int64
}
