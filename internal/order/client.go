package order

import (
	"context"
	"encoding/json"

	"deliciae/internal/rest"
)

// Client talks to the Order Submission Service.
type Client struct {
	api *rest.Client
}

func NewClient(api *rest.Client) *Client {
	return &Client{api: api}
}

// List fetches the caller's dining orders.
func (c *Client) List(ctx context.Context) ([]Order, error) {
	var raw json.RawMessage
	if err := c.api.DoJSON(ctx, "GET", "/api/dining-orders/", nil, &raw); err != nil {
		return nil, err
	}

	var orders []Order
	if err := rest.UnmarshalList(raw, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateRequest is the submission payload. Items carries one id per unit;
// a line with quantity n contributes n copies.
type CreateRequest struct {
	Restaurant  int64   `json:"restaurant"`
	Items       []int64 `json:"items"`
	TotalAmount float64 `json:"total_amount"`
	Status      Status  `json:"status"`
}

// Create submits one order. The idempotency key guards against the same
// checkout being applied twice on a retried request.
func (c *Client) Create(ctx context.Context, req CreateRequest, idempotencyKey string) (*Order, error) {
	headers := map[string]string{}
	if idempotencyKey != "" {
		headers["Idempotency-Key"] = idempotencyKey
	}

	var placed Order
	if err := c.api.DoJSONHeaders(ctx, "POST", "/api/dining-orders/", headers, req, &placed); err != nil {
		return nil, err
	}
	return &placed, nil
}
