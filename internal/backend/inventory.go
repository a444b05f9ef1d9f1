package backend

import (
	"context"
	"net/http"

	"stockdesk/internal/model"
)

// ListInventory returns all inventory records.
func (c *Client) ListInventory(ctx context.Context, token string) ([]model.InventoryRecord, error) {
	var records []model.InventoryRecord
	if err := c.do(ctx, token, http.MethodGet, "/api/inventory", nil, nil, &records, "fetch inventory"); err != nil {
		return nil, err
	}
	return records, nil
}

// GetInventory returns an inventory record by ID.
func (c *Client) GetInventory(ctx context.Context, token, id string) (*model.InventoryRecord, error) {
	record := &model.InventoryRecord{}
	if err := c.do(ctx, token, http.MethodGet, "/api/inventory/"+id, nil, nil, record, "fetch inventory"); err != nil {
		return nil, err
	}
	return record, nil
}

// CreateInventory creates an inventory record. The backend enforces one
// record per (product, warehouse) pair.
func (c *Client) CreateInventory(ctx context.Context, token string, payload model.InventoryPayload) (*model.InventoryRecord, error) {
	record := &model.InventoryRecord{}
	if err := c.do(ctx, token, http.MethodPost, "/api/inventory", nil, payload, record, "create inventory"); err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateInventory updates an inventory record by ID.
func (c *Client) UpdateInventory(ctx context.Context, token, id string, payload model.InventoryPayload) (*model.InventoryRecord, error) {
	record := &model.InventoryRecord{}
	if err := c.do(ctx, token, http.MethodPut, "/api/inventory/"+id, nil, payload, record, "update inventory"); err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteInventory deletes an inventory record by ID.
func (c *Client) DeleteInventory(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, "/api/inventory/"+id, nil, nil, nil, "delete inventory")
}
