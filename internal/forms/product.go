package forms

import (
	"net/url"
	"strconv"

	"stockdesk/internal/model"
)

// Product holds raw product form input.
type Product struct {
	Name        string
	SKU         string
	Category    string
	Price       string
	Description string
}

// ParseProduct reads product form fields from posted values.
func ParseProduct(v url.Values) Product {
	return Product{
		Name:        trimmed(v, "name"),
		SKU:         trimmed(v, "sku"),
		Category:    trimmed(v, "category"),
		Price:       trimmed(v, "price"),
		Description: v.Get("description"),
	}
}

// ProductFromModel pre-fills the form with an existing product, for the
// edit page.
func ProductFromModel(p *model.Product) Product {
	return Product{
		Name:        p.Name,
		SKU:         p.SKU,
		Category:    p.Category,
		Price:       strconv.FormatFloat(p.Price, 'f', -1, 64),
		Description: p.Description,
	}
}

// Validate checks the form and returns per-field errors.
func (f Product) Validate() Errors {
	errs := Errors{}
	if f.Name == "" {
		errs["name"] = "Name is required"
	}
	if f.SKU == "" {
		errs["sku"] = "SKU is required"
	}
	if _, ok := parseNonNegativeFloat(f.Price); !ok {
		errs["price"] = "Price must be non-negative"
	}
	return errs
}

// Payload converts a validated form into the backend request body.
func (f Product) Payload() model.ProductPayload {
	price, _ := parseNonNegativeFloat(f.Price)
	return model.ProductPayload{
		Name:        f.Name,
		SKU:         f.SKU,
		Category:    f.Category,
		Price:       price,
		Description: f.Description,
	}
}
