package backend

import (
	"context"
	"net/http"

	"stockdesk/internal/model"
)

// ListStockAlerts returns all active (unresolved) stock alerts.
func (c *Client) ListStockAlerts(ctx context.Context, token string) ([]model.StockAlert, error) {
	var alerts []model.StockAlert
	if err := c.do(ctx, token, http.MethodGet, "/api/stock-alerts", nil, nil, &alerts, "fetch stock alerts"); err != nil {
		return nil, err
	}
	return alerts, nil
}

// ResolveStockAlert marks an alert as resolved, removing it from the
// active list.
func (c *Client) ResolveStockAlert(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodPost, "/api/stock-alerts/"+id+"/resolve", nil, nil, nil, "resolve stock alert")
}
