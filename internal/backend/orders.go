package backend

import (
	"context"
	"net/http"

	"stockdesk/internal/model"
)

type fulfillRequest struct {
	ReceivedBy string `json:"receivedBy"`
}

// ListPurchaseOrders returns all purchase orders.
func (c *Client) ListPurchaseOrders(ctx context.Context, token string) ([]model.PurchaseOrder, error) {
	var orders []model.PurchaseOrder
	if err := c.do(ctx, token, http.MethodGet, "/api/purchase-orders", nil, nil, &orders, "fetch purchase orders"); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetPurchaseOrder returns a purchase order by ID.
func (c *Client) GetPurchaseOrder(ctx context.Context, token, id string) (*model.PurchaseOrder, error) {
	order := &model.PurchaseOrder{}
	if err := c.do(ctx, token, http.MethodGet, "/api/purchase-orders/"+id, nil, nil, order, "fetch purchase order"); err != nil {
		return nil, err
	}
	return order, nil
}

// CreatePurchaseOrder creates a purchase order.
func (c *Client) CreatePurchaseOrder(ctx context.Context, token string, payload model.PurchaseOrderPayload) (*model.PurchaseOrder, error) {
	order := &model.PurchaseOrder{}
	if err := c.do(ctx, token, http.MethodPost, "/api/purchase-orders", nil, payload, order, "create purchase order"); err != nil {
		return nil, err
	}
	return order, nil
}

// FulfillPurchaseOrder marks a pending order as fulfilled. The backend
// rejects the transition unless the order's status is PENDING.
func (c *Client) FulfillPurchaseOrder(ctx context.Context, token, id, receivedBy string) (*model.PurchaseOrder, error) {
	order := &model.PurchaseOrder{}
	body := fulfillRequest{ReceivedBy: receivedBy}
	if err := c.do(ctx, token, http.MethodPost, "/api/purchase-orders/"+id+"/fulfill", nil, body, order, "fulfill purchase order"); err != nil {
		return nil, err
	}
	return order, nil
}
