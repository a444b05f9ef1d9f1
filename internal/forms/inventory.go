package forms

import (
	"net/url"
	"strconv"

	"stockdesk/internal/model"
)

// Inventory holds raw inventory form input. Product and warehouse are
// selected from dropdowns, so their values stay as the backend's IDs.
type Inventory struct {
	ProductID        string
	WarehouseID      string
	Quantity         string
	ReorderThreshold string
}

// ParseInventory reads inventory form fields from posted values.
func ParseInventory(v url.Values) Inventory {
	return Inventory{
		ProductID:        trimmed(v, "productId"),
		WarehouseID:      trimmed(v, "warehouseId"),
		Quantity:         trimmed(v, "quantity"),
		ReorderThreshold: trimmed(v, "reorderThreshold"),
	}
}

// InventoryFromModel pre-fills the form with an existing record.
func InventoryFromModel(rec *model.InventoryRecord) Inventory {
	f := Inventory{
		ProductID:   rec.ProductID,
		WarehouseID: rec.WarehouseID,
		Quantity:    strconv.Itoa(rec.Quantity),
	}
	if rec.ReorderThreshold != nil {
		f.ReorderThreshold = strconv.Itoa(*rec.ReorderThreshold)
	}
	return f
}

// Validate checks the form and returns per-field errors.
func (f Inventory) Validate() Errors {
	errs := Errors{}
	if f.ProductID == "" {
		errs["productId"] = "Product is required"
	}
	if f.WarehouseID == "" {
		errs["warehouseId"] = "Warehouse is required"
	}
	if _, ok := parseNonNegativeInt(f.Quantity); !ok {
		errs["quantity"] = "Quantity must be non-negative"
	}
	if f.ReorderThreshold != "" {
		if _, ok := parseNonNegativeInt(f.ReorderThreshold); !ok {
			errs["reorderThreshold"] = "Reorder threshold must be non-negative"
		}
	}
	return errs
}

// Payload converts a validated form into the backend request body.
func (f Inventory) Payload() model.InventoryPayload {
	quantity, _ := parseNonNegativeInt(f.Quantity)
	payload := model.InventoryPayload{
		ProductID:   f.ProductID,
		WarehouseID: f.WarehouseID,
		Quantity:    quantity,
	}
	if f.ReorderThreshold != "" {
		threshold, _ := parseNonNegativeInt(f.ReorderThreshold)
		payload.ReorderThreshold = &threshold
	}
	return payload
}
