package model

// ReportFilter narrows report queries. Blank fields are omitted from the
// query string entirely rather than sent empty.
type ReportFilter struct {
	StartDate   string
	EndDate     string
	ProductID   string
	WarehouseID string
}

// TurnoverRow is one row of the inventory turnover report.
type TurnoverRow struct {
	ProductID        string  `json:"productId"`
	ProductName      string  `json:"productName"`
	WarehouseID      string  `json:"warehouseId"`
	WarehouseName    string  `json:"warehouseName"`
	PeriodStart      string  `json:"periodStart"`
	PeriodEnd        string  `json:"periodEnd"`
	TurnoverRatio    float64 `json:"turnoverRatio"`
	CostOfGoodsSold  float64 `json:"costOfGoodsSold"`
	AverageInventory float64 `json:"averageInventory"`
	UnitCost         float64 `json:"unitCost"`
}

// ValuationRow is one row of the stock valuation report.
type ValuationRow struct {
	ProductID      string  `json:"productId"`
	ProductName    string  `json:"productName"`
	WarehouseID    string  `json:"warehouseId"`
	WarehouseName  string  `json:"warehouseName"`
	QuantityOnHand float64 `json:"quantityOnHand"`
	UnitCost       float64 `json:"unitCost"`
	TotalValue     float64 `json:"totalValue"`
}

// TrendPoint is one dated point of the inventory trends report.
type TrendPoint struct {
	ProductID      string  `json:"productId"`
	ProductName    string  `json:"productName"`
	WarehouseID    string  `json:"warehouseId"`
	WarehouseName  string  `json:"warehouseName"`
	Date           string  `json:"date"`
	QuantityOnHand float64 `json:"quantityOnHand"`
}
