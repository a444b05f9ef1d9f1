package model

// PurchaseOrder represents a supplier order as served by the backend.
type PurchaseOrder struct {
	ID            string `json:"id"`
	SupplierName  string `json:"supplierName"`
	ProductName   string `json:"productName"`
	WarehouseName string `json:"warehouseName"`
	Quantity      int    `json:"quantity"`
	OrderDate     string `json:"orderDate,omitempty"`
	Status        string `json:"status"`
	ReceivedAt    string `json:"receivedAt,omitempty"`
	ReceivedBy    string `json:"receivedBy,omitempty"`
}

// Purchase order statuses. The only transition is PENDING to FULFILLED.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusFulfilled = "FULFILLED"
)

// Pending reports whether the order can still be fulfilled.
func (po *PurchaseOrder) Pending() bool {
	return po.Status == OrderStatusPending
}

// PurchaseOrderPayload is the request body for creating a purchase order.
type PurchaseOrderPayload struct {
	SupplierName  string `json:"supplierName"`
	ProductName   string `json:"productName"`
	WarehouseName string `json:"warehouseName"`
	Quantity      int    `json:"quantity"`
}
