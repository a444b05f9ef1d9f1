package web

import (
	"net/http"

	"stockdesk/internal/forms"
	"stockdesk/internal/model"
)

type reportPage struct {
	PageData
	Filter      forms.ReportFilter
	FieldErrors forms.Errors
	Products    []model.Product
	Warehouses  []model.Warehouse

	// Ran is set once a query has been submitted, so the template can
	// distinguish "no results" from "not queried yet".
	Ran bool
}

type turnoverPage struct {
	reportPage
	Rows []model.TurnoverRow
}

type valuationPage struct {
	reportPage
	Rows []model.ValuationRow
}

type trendsPage struct {
	reportPage
	Points []model.TrendPoint
}

// reportBase prepares the shared part of a report page: base page data,
// parsed filter, and the catalogs backing the filter dropdowns.
func (s *Server) reportBase(w http.ResponseWriter, r *http.Request, title string, requireDates bool) reportPage {
	data := reportPage{
		PageData: s.page(w, r, title),
		Filter:   forms.ParseReportFilter(r.URL.Query(), requireDates),
		Ran:      r.URL.Query().Get("run") == "1",
	}

	products, warehouses, err := s.fetchCatalog(r.Context(), token(r.Context()))
	if err != nil {
		s.Log.Error("failed to load catalog for report filters", "error", err)
		data.Flash = errorFlash(err)
	}
	data.Products = products
	data.Warehouses = warehouses
	return data
}

// InventoryTurnoverPage handles GET /reports/inventory-turnover.
func (s *Server) InventoryTurnoverPage(w http.ResponseWriter, r *http.Request) {
	data := turnoverPage{reportPage: s.reportBase(w, r, "Inventory turnover", true)}

	if data.Ran {
		if errs := data.Filter.Validate(); !errs.Valid() {
			data.FieldErrors = errs
		} else {
			rows, err := s.Backend.InventoryTurnover(r.Context(), token(r.Context()), data.Filter.Filter())
			if err != nil {
				s.Log.Error("failed to fetch turnover report", "error", err)
				data.Flash = errorFlash(err)
			}
			data.Rows = rows
		}
	}

	s.Templates.Render(w, "report_turnover.html", &data)
}

// StockValuationPage handles GET /reports/stock-valuation. Valuation is a
// point-in-time report, so the date filters are not required.
func (s *Server) StockValuationPage(w http.ResponseWriter, r *http.Request) {
	data := valuationPage{reportPage: s.reportBase(w, r, "Stock valuation", false)}

	if data.Ran {
		if errs := data.Filter.Validate(); !errs.Valid() {
			data.FieldErrors = errs
		} else {
			rows, err := s.Backend.StockValuation(r.Context(), token(r.Context()), data.Filter.Filter())
			if err != nil {
				s.Log.Error("failed to fetch valuation report", "error", err)
				data.Flash = errorFlash(err)
			}
			data.Rows = rows
		}
	}

	s.Templates.Render(w, "report_valuation.html", &data)
}

// InventoryTrendsPage handles GET /reports/inventory-trends.
func (s *Server) InventoryTrendsPage(w http.ResponseWriter, r *http.Request) {
	data := trendsPage{reportPage: s.reportBase(w, r, "Inventory trends", true)}

	if data.Ran {
		if errs := data.Filter.Validate(); !errs.Valid() {
			data.FieldErrors = errs
		} else {
			points, err := s.Backend.InventoryTrends(r.Context(), token(r.Context()), data.Filter.Filter())
			if err != nil {
				s.Log.Error("failed to fetch trends report", "error", err)
				data.Flash = errorFlash(err)
			}
			data.Points = points
		}
	}

	s.Templates.Render(w, "report_trends.html", &data)
}
