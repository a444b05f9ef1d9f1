package model

// InventoryRecord represents the stock of one product in one warehouse.
// The backend guarantees at most one record per (product, warehouse) pair.
type InventoryRecord struct {
	ID            string `json:"id"`
	ProductID     string `json:"productId"`
	ProductName   string `json:"productName,omitempty"`
	WarehouseID   string `json:"warehouseId"`
	WarehouseName string `json:"warehouseName,omitempty"`
	Quantity      int    `json:"quantity"`

	// ReorderThreshold triggers stock alerts upstream when quantity
	// drops below it. Optional, the backend omits it when unset.
	ReorderThreshold *int   `json:"reorderThreshold,omitempty"`
	CreatedAt        string `json:"createdAt,omitempty"`
	UpdatedAt        string `json:"updatedAt,omitempty"`
}

// InventoryPayload is the request body for creating or updating an
// inventory record.
type InventoryPayload struct {
	ProductID        string `json:"productId"`
	WarehouseID      string `json:"warehouseId"`
	Quantity         int    `json:"quantity"`
	ReorderThreshold *int   `json:"reorderThreshold,omitempty"`
}
