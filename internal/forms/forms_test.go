package forms

import (
	"net/url"
	"testing"
)

func TestProductValidateRequiredFields(t *testing.T) {
	form := ParseProduct(url.Values{})

	errs := form.Validate()
	if errs.Valid() {
		t.Fatal("expected validation errors for empty product form")
	}
	if errs["name"] != "Name is required" {
		t.Errorf("expected name error, got %q", errs["name"])
	}
	if errs["sku"] != "SKU is required" {
		t.Errorf("expected sku error, got %q", errs["sku"])
	}
	if errs["price"] != "Price must be non-negative" {
		t.Errorf("expected price error, got %q", errs["price"])
	}
	if len(errs) != 3 {
		t.Errorf("expected exactly 3 errors, got %d: %v", len(errs), errs)
	}
}

func TestProductValidateNegativePrice(t *testing.T) {
	form := ParseProduct(url.Values{
		"name":  {"Widget"},
		"sku":   {"W-1"},
		"price": {"-1.50"},
	})

	errs := form.Validate()
	if errs["price"] != "Price must be non-negative" {
		t.Errorf("expected price error for negative price, got %v", errs)
	}
}

func TestProductPayloadCoercesPrice(t *testing.T) {
	form := ParseProduct(url.Values{
		"name":  {"Widget"},
		"sku":   {"W-1"},
		"price": {"19.99"},
	})

	if errs := form.Validate(); !errs.Valid() {
		t.Fatalf("unexpected errors: %v", errs)
	}

	payload := form.Payload()
	if payload.Price != 19.99 {
		t.Errorf("expected price 19.99, got %v", payload.Price)
	}
	if payload.Name != "Widget" || payload.SKU != "W-1" {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestWarehouseValidate(t *testing.T) {
	form := ParseWarehouse(url.Values{"location": {"Ljubljana"}})

	errs := form.Validate()
	if errs["name"] != "Name is required" {
		t.Errorf("expected name error, got %v", errs)
	}

	form.Name = "Main"
	if errs := form.Validate(); !errs.Valid() {
		t.Errorf("expected valid form, got %v", errs)
	}
}

func TestInventoryValidateRequiredFields(t *testing.T) {
	form := ParseInventory(url.Values{})

	errs := form.Validate()
	if errs["productId"] != "Product is required" {
		t.Errorf("expected productId error, got %v", errs)
	}
	if errs["warehouseId"] != "Warehouse is required" {
		t.Errorf("expected warehouseId error, got %v", errs)
	}
	if errs["quantity"] != "Quantity must be non-negative" {
		t.Errorf("expected quantity error, got %v", errs)
	}
}

func TestInventoryPayloadCoercesQuantity(t *testing.T) {
	form := ParseInventory(url.Values{
		"productId":   {"1"},
		"warehouseId": {"10"},
		"quantity":    {"15"},
	})

	if errs := form.Validate(); !errs.Valid() {
		t.Fatalf("unexpected errors: %v", errs)
	}

	payload := form.Payload()
	if payload.ProductID != "1" || payload.WarehouseID != "10" {
		t.Errorf("expected ids to stay as selected strings, got %+v", payload)
	}
	if payload.Quantity != 15 {
		t.Errorf("expected quantity 15, got %d", payload.Quantity)
	}
	if payload.ReorderThreshold != nil {
		t.Errorf("expected nil reorder threshold, got %v", *payload.ReorderThreshold)
	}
}

func TestInventoryOptionalReorderThreshold(t *testing.T) {
	form := ParseInventory(url.Values{
		"productId":        {"1"},
		"warehouseId":      {"10"},
		"quantity":         {"5"},
		"reorderThreshold": {"3"},
	})

	if errs := form.Validate(); !errs.Valid() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	payload := form.Payload()
	if payload.ReorderThreshold == nil || *payload.ReorderThreshold != 3 {
		t.Errorf("expected threshold 3, got %v", payload.ReorderThreshold)
	}

	form.ReorderThreshold = "-2"
	if errs := form.Validate(); errs["reorderThreshold"] == "" {
		t.Error("expected error for negative reorder threshold")
	}
}

func TestPurchaseOrderValidateQuantityAtLeastOne(t *testing.T) {
	form := ParsePurchaseOrder(url.Values{
		"supplierName":  {"Acme"},
		"productName":   {"Widget"},
		"warehouseName": {"Main"},
		"quantity":      {"0"},
	})

	errs := form.Validate()
	if errs["quantity"] != "Quantity must be at least 1" {
		t.Errorf("expected quantity error, got %v", errs)
	}

	form.Quantity = "4"
	if errs := form.Validate(); !errs.Valid() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if form.Payload().Quantity != 4 {
		t.Errorf("expected quantity 4, got %d", form.Payload().Quantity)
	}
}

func TestReportFilterRequiresDates(t *testing.T) {
	filter := ParseReportFilter(url.Values{}, true)

	errs := filter.Validate()
	if errs["startDate"] != "Start date is required" {
		t.Errorf("expected start date error, got %v", errs)
	}
	if errs["endDate"] != "End date is required" {
		t.Errorf("expected end date error, got %v", errs)
	}

	// Valuation-style filters are fine without dates.
	optional := ParseReportFilter(url.Values{}, false)
	if errs := optional.Validate(); !errs.Valid() {
		t.Errorf("expected valid filter, got %v", errs)
	}
}

func TestReportFilterRejectsReversedRange(t *testing.T) {
	filter := ParseReportFilter(url.Values{
		"startDate": {"2024-06-01"},
		"endDate":   {"2024-01-01"},
	}, true)

	errs := filter.Validate()
	if errs["startDate"] != "Start date must not be after end date" {
		t.Errorf("expected range error, got %v", errs)
	}
}

func TestReportFilterOmitsBlankFields(t *testing.T) {
	filter := ParseReportFilter(url.Values{
		"startDate": {"2024-01-01"},
		"endDate":   {"2024-06-01"},
	}, true)

	if errs := filter.Validate(); !errs.Valid() {
		t.Fatalf("unexpected errors: %v", errs)
	}

	f := filter.Filter()
	if f.ProductID != "" || f.WarehouseID != "" {
		t.Errorf("expected blank filters to stay blank, got %+v", f)
	}
}
