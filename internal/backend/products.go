package backend

import (
	"context"
	"net/http"

	"stockdesk/internal/model"
)

// ListProducts returns all products.
func (c *Client) ListProducts(ctx context.Context, token string) ([]model.Product, error) {
	var products []model.Product
	if err := c.do(ctx, token, http.MethodGet, "/api/products", nil, nil, &products, "fetch products"); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct returns a product by ID.
func (c *Client) GetProduct(ctx context.Context, token, id string) (*model.Product, error) {
	product := &model.Product{}
	if err := c.do(ctx, token, http.MethodGet, "/api/products/"+id, nil, nil, product, "fetch product"); err != nil {
		return nil, err
	}
	return product, nil
}

// CreateProduct creates a product and returns the server-assigned entity.
func (c *Client) CreateProduct(ctx context.Context, token string, payload model.ProductPayload) (*model.Product, error) {
	product := &model.Product{}
	if err := c.do(ctx, token, http.MethodPost, "/api/products", nil, payload, product, "create product"); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct updates a product by ID.
func (c *Client) UpdateProduct(ctx context.Context, token, id string, payload model.ProductPayload) (*model.Product, error) {
	product := &model.Product{}
	if err := c.do(ctx, token, http.MethodPut, "/api/products/"+id, nil, payload, product, "update product"); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product by ID.
func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, "/api/products/"+id, nil, nil, nil, "delete product")
}
