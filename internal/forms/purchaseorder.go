package forms

import (
	"net/url"
	"strconv"

	"stockdesk/internal/model"
)

// PurchaseOrder holds raw purchase order form input. Orders reference
// product and warehouse by name, matching the backend contract.
type PurchaseOrder struct {
	SupplierName  string
	ProductName   string
	WarehouseName string
	Quantity      string
}

// ParsePurchaseOrder reads purchase order form fields from posted values.
func ParsePurchaseOrder(v url.Values) PurchaseOrder {
	return PurchaseOrder{
		SupplierName:  trimmed(v, "supplierName"),
		ProductName:   trimmed(v, "productName"),
		WarehouseName: trimmed(v, "warehouseName"),
		Quantity:      trimmed(v, "quantity"),
	}
}

// Validate checks the form and returns per-field errors.
func (f PurchaseOrder) Validate() Errors {
	errs := Errors{}
	if f.SupplierName == "" {
		errs["supplierName"] = "Supplier name is required"
	}
	if f.ProductName == "" {
		errs["productName"] = "Product is required"
	}
	if f.WarehouseName == "" {
		errs["warehouseName"] = "Warehouse is required"
	}
	if n, err := strconv.Atoi(f.Quantity); err != nil || n < 1 {
		errs["quantity"] = "Quantity must be at least 1"
	}
	return errs
}

// Payload converts a validated form into the backend request body.
func (f PurchaseOrder) Payload() model.PurchaseOrderPayload {
	quantity, _ := strconv.Atoi(f.Quantity)
	return model.PurchaseOrderPayload{
		SupplierName:  f.SupplierName,
		ProductName:   f.ProductName,
		WarehouseName: f.WarehouseName,
		Quantity:      quantity,
	}
}
