// Package courier calls the external delivery service over HTTP to request
// a rider for accepted delivery orders.
package courier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

const defaultTimeout = 10 * time.Second

// deliveryRequest is the wire format the delivery service accepts.
type deliveryRequest struct {
	OrderID         openapi_types.UUID `json:"orderId"`
	Amount          int64              `json:"amount"`
	DeliveryAddress string             `json:"deliveryAddress"`
}

// Client implements CourierDispatchClient against the delivery service's
// REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a dispatch client for the given service base URL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// RequestDelivery asks the delivery service to pick up the order.
// Any non-2xx response is treated as a failed dispatch.
func (c *Client) RequestDelivery(ctx context.Context, orderID kernel.UUID, amount int64, deliveryAddress string) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(deliveryRequest{
		OrderID:         orderID.Bytes(),
		Amount:          amount,
		DeliveryAddress: deliveryAddress,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/deliveries", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request delivery for order %s: %w", orderID, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("request delivery for order %s: unexpected status %d", orderID, resp.StatusCode)
	}

	return nil
}
