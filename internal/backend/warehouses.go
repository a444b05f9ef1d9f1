package backend

import (
	"context"
	"net/http"

	"stockdesk/internal/model"
)

// ListWarehouses returns all warehouses.
func (c *Client) ListWarehouses(ctx context.Context, token string) ([]model.Warehouse, error) {
	var warehouses []model.Warehouse
	if err := c.do(ctx, token, http.MethodGet, "/api/warehouses", nil, nil, &warehouses, "fetch warehouses"); err != nil {
		return nil, err
	}
	return warehouses, nil
}

// GetWarehouse returns a warehouse by ID.
func (c *Client) GetWarehouse(ctx context.Context, token, id string) (*model.Warehouse, error) {
	warehouse := &model.Warehouse{}
	if err := c.do(ctx, token, http.MethodGet, "/api/warehouses/"+id, nil, nil, warehouse, "fetch warehouse"); err != nil {
		return nil, err
	}
	return warehouse, nil
}

// CreateWarehouse creates a warehouse and returns the server-assigned entity.
func (c *Client) CreateWarehouse(ctx context.Context, token string, payload model.WarehousePayload) (*model.Warehouse, error) {
	warehouse := &model.Warehouse{}
	if err := c.do(ctx, token, http.MethodPost, "/api/warehouses", nil, payload, warehouse, "create warehouse"); err != nil {
		return nil, err
	}
	return warehouse, nil
}

// UpdateWarehouse updates a warehouse by ID.
func (c *Client) UpdateWarehouse(ctx context.Context, token, id string, payload model.WarehousePayload) (*model.Warehouse, error) {
	warehouse := &model.Warehouse{}
	if err := c.do(ctx, token, http.MethodPut, "/api/warehouses/"+id, nil, payload, warehouse, "update warehouse"); err != nil {
		return nil, err
	}
	return warehouse, nil
}

// DeleteWarehouse deletes a warehouse by ID.
func (c *Client) DeleteWarehouse(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, "/api/warehouses/"+id, nil, nil, nil, "delete warehouse")
}
