package backend

import (
	"context"
	"net/http"
	"net/url"

	"stockdesk/internal/model"
)

// reportQuery builds the query string for a report call, omitting every
// blank filter field.
func reportQuery(f model.ReportFilter) url.Values {
	q := url.Values{}
	if f.StartDate != "" {
		q.Set("startDate", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("endDate", f.EndDate)
	}
	if f.ProductID != "" {
		q.Set("productId", f.ProductID)
	}
	if f.WarehouseID != "" {
		q.Set("warehouseId", f.WarehouseID)
	}
	return q
}

// InventoryTurnover returns the turnover report for the filtered period.
func (c *Client) InventoryTurnover(ctx context.Context, token string, f model.ReportFilter) ([]model.TurnoverRow, error) {
	var rows []model.TurnoverRow
	if err := c.do(ctx, token, http.MethodGet, "/api/reports/inventory-turnover", reportQuery(f), nil, &rows, "fetch inventory turnover report"); err != nil {
		return nil, err
	}
	return rows, nil
}

// StockValuation returns the current stock valuation report.
func (c *Client) StockValuation(ctx context.Context, token string, f model.ReportFilter) ([]model.ValuationRow, error) {
	var rows []model.ValuationRow
	if err := c.do(ctx, token, http.MethodGet, "/api/reports/stock-valuation", reportQuery(f), nil, &rows, "fetch stock valuation report"); err != nil {
		return nil, err
	}
	return rows, nil
}

// InventoryTrends returns dated stock levels for the filtered period.
func (c *Client) InventoryTrends(ctx context.Context, token string, f model.ReportFilter) ([]model.TrendPoint, error) {
	var points []model.TrendPoint
	if err := c.do(ctx, token, http.MethodGet, "/api/reports/inventory-trends", reportQuery(f), nil, &points, "fetch inventory trends report"); err != nil {
		return nil, err
	}
	return points, nil
}
