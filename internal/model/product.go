package model

// Product represents a catalog product as served by the backend.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	SKU         string  `json:"sku"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

// ProductPayload is the request body for creating or updating a product.
type ProductPayload struct {
	Name        string  `json:"name"`
	SKU         string  `json:"sku"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}
