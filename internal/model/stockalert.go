package model

// StockAlert represents an active low-stock alert. Alerts are created
// upstream when an inventory record drops below its reorder threshold and
// disappear from the active list once resolved.
type StockAlert struct {
	ID            string `json:"id"`
	ProductName   string `json:"productName"`
	WarehouseName string `json:"warehouseName"`
	Quantity      int    `json:"quantity"`
	Threshold     int    `json:"threshold"`
	CreatedAt     string `json:"createdAt,omitempty"`
}
