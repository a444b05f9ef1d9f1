package model

// Warehouse represents a storage location as served by the backend.
type Warehouse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

// WarehousePayload is the request body for creating or updating a warehouse.
type WarehousePayload struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}
