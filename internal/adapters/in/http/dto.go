package http

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateOrderRequest is the wire format for registering a new order.
type CreateOrderRequest struct {
	Type            string              `json:"type"`
	DeliveryAddress string              `json:"deliveryAddress,omitempty"`
	OrderTableID    *openapi_types.UUID `json:"orderTableId,omitempty"`
	LineItems       []LineItemRequest   `json:"orderLineItems"`
}

// LineItemRequest is one requested menu reference within a new order.
type LineItemRequest struct {
	MenuID   openapi_types.UUID `json:"menuId"`
	Quantity int64              `json:"quantity"`
	Price    int64              `json:"price"`
}

// CreateOrderResponse returns the identifier assigned to a new order.
type CreateOrderResponse struct {
	ID openapi_types.UUID `json:"id"`
}

// OrderResponse is one order in the listing.
type OrderResponse struct {
	ID              openapi_types.UUID  `json:"id"`
	Type            string              `json:"type"`
	Status          string              `json:"status"`
	DeliveryAddress string              `json:"deliveryAddress,omitempty"`
	OrderTableID    *openapi_types.UUID `json:"orderTableId,omitempty"`
	Total           int64               `json:"total"`
	LineItems       []LineItemResponse  `json:"orderLineItems"`
}

// LineItemResponse is one line item in an order listing.
type LineItemResponse struct {
	MenuID   openapi_types.UUID `json:"menuId"`
	Quantity int64              `json:"quantity"`
	Price    int64              `json:"price"`
}

// Error is the wire format for failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
