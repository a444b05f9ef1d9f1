package forms

import (
	"net/url"

	"stockdesk/internal/model"
)

// Warehouse holds raw warehouse form input.
type Warehouse struct {
	Name     string
	Location string
}

// ParseWarehouse reads warehouse form fields from posted values.
func ParseWarehouse(v url.Values) Warehouse {
	return Warehouse{
		Name:     trimmed(v, "name"),
		Location: trimmed(v, "location"),
	}
}

// WarehouseFromModel pre-fills the form with an existing warehouse.
func WarehouseFromModel(w *model.Warehouse) Warehouse {
	return Warehouse{Name: w.Name, Location: w.Location}
}

// Validate checks the form and returns per-field errors.
func (f Warehouse) Validate() Errors {
	errs := Errors{}
	if f.Name == "" {
		errs["name"] = "Name is required"
	}
	return errs
}

// Payload converts a validated form into the backend request body.
func (f Warehouse) Payload() model.WarehousePayload {
	return model.WarehousePayload{Name: f.Name, Location: f.Location}
}
