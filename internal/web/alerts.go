package web

import (
	"net/http"

	"stockdesk/internal/model"
)

type stockAlertsPage struct {
	PageData
	Alerts []model.StockAlert
}

// StockAlertsPage handles GET /stock-alerts.
func (s *Server) StockAlertsPage(w http.ResponseWriter, r *http.Request) {
	data := stockAlertsPage{PageData: s.page(w, r, "Stock alerts")}

	alerts, err := s.Backend.ListStockAlerts(r.Context(), token(r.Context()))
	if err != nil {
		s.Log.Error("failed to list stock alerts", "error", err)
		data.Flash = errorFlash(err)
	}
	data.Alerts = alerts

	s.Templates.Render(w, "stock_alerts.html", &data)
}

// StockAlertResolveSubmit handles POST /stock-alerts/{id}/resolve. A
// resolved alert drops out of the active list, which the redirect
// re-fetches.
func (s *Server) StockAlertResolveSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.Backend.ResolveStockAlert(r.Context(), token(r.Context()), id); err != nil {
		s.Log.Error("failed to resolve stock alert", "id", id, "error", err)
		setErrorFlash(w, err)
	} else {
		s.Log.Info("stock alert resolved", "user", CurrentSession(r.Context()).Username, "id", id)
	}

	http.Redirect(w, r, "/stock-alerts", http.StatusSeeOther)
}
