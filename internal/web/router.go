package web

import (
	"log/slog"
	"net/http"

	"stockdesk/internal/backend"
	"stockdesk/internal/session"
	webembed "stockdesk/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(client *backend.Client, sessions *session.Manager, log *slog.Logger) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		Backend:   client,
		Sessions:  sessions,
		Templates: templates,
		Log:       log,
	}

	mux := http.NewServeMux()
	guard := RequireSession(sessions)

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Public routes.
	mux.HandleFunc("GET /login", s.LoginPage)
	mux.HandleFunc("POST /login", s.LoginSubmit)
	mux.HandleFunc("GET /register", s.RegisterPage)
	mux.HandleFunc("POST /register", s.RegisterSubmit)
	mux.HandleFunc("POST /logout", s.Logout)

	// Authenticated routes.
	mux.Handle("GET /{$}", guard(http.HandlerFunc(s.Dashboard)))

	mux.Handle("GET /products", guard(http.HandlerFunc(s.ProductsPage)))
	mux.Handle("GET /products/new", guard(http.HandlerFunc(s.ProductCreatePage)))
	mux.Handle("POST /products/new", guard(http.HandlerFunc(s.ProductCreateSubmit)))
	mux.Handle("GET /products/{id}/edit", guard(http.HandlerFunc(s.ProductEditPage)))
	mux.Handle("POST /products/{id}/edit", guard(http.HandlerFunc(s.ProductEditSubmit)))
	mux.Handle("POST /products/{id}/delete", guard(http.HandlerFunc(s.ProductDeleteSubmit)))

	mux.Handle("GET /warehouses", guard(http.HandlerFunc(s.WarehousesPage)))
	mux.Handle("GET /warehouses/new", guard(http.HandlerFunc(s.WarehouseCreatePage)))
	mux.Handle("POST /warehouses/new", guard(http.HandlerFunc(s.WarehouseCreateSubmit)))
	mux.Handle("GET /warehouses/{id}/edit", guard(http.HandlerFunc(s.WarehouseEditPage)))
	mux.Handle("POST /warehouses/{id}/edit", guard(http.HandlerFunc(s.WarehouseEditSubmit)))
	mux.Handle("POST /warehouses/{id}/delete", guard(http.HandlerFunc(s.WarehouseDeleteSubmit)))

	mux.Handle("GET /inventory", guard(http.HandlerFunc(s.InventoryPage)))
	mux.Handle("GET /inventory/new", guard(http.HandlerFunc(s.InventoryCreatePage)))
	mux.Handle("POST /inventory/new", guard(http.HandlerFunc(s.InventoryCreateSubmit)))
	mux.Handle("GET /inventory/{id}/edit", guard(http.HandlerFunc(s.InventoryEditPage)))
	mux.Handle("POST /inventory/{id}/edit", guard(http.HandlerFunc(s.InventoryEditSubmit)))
	mux.Handle("POST /inventory/{id}/delete", guard(http.HandlerFunc(s.InventoryDeleteSubmit)))

	mux.Handle("GET /purchase-orders", guard(http.HandlerFunc(s.PurchaseOrdersPage)))
	mux.Handle("GET /purchase-orders/new", guard(http.HandlerFunc(s.PurchaseOrderCreatePage)))
	mux.Handle("POST /purchase-orders/new", guard(http.HandlerFunc(s.PurchaseOrderCreateSubmit)))
	mux.Handle("POST /purchase-orders/{id}/fulfill", guard(http.HandlerFunc(s.PurchaseOrderFulfillSubmit)))

	mux.Handle("GET /stock-alerts", guard(http.HandlerFunc(s.StockAlertsPage)))
	mux.Handle("POST /stock-alerts/{id}/resolve", guard(http.HandlerFunc(s.StockAlertResolveSubmit)))

	mux.Handle("GET /reports/inventory-turnover", guard(http.HandlerFunc(s.InventoryTurnoverPage)))
	mux.Handle("GET /reports/stock-valuation", guard(http.HandlerFunc(s.StockValuationPage)))
	mux.Handle("GET /reports/inventory-trends", guard(http.HandlerFunc(s.InventoryTrendsPage)))

	return mux, nil
}
