package web

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"stockdesk/internal/model"
)

type dashboardPage struct {
	PageData
	ProductCount   int
	WarehouseCount int
	InventoryCount int
	PendingOrders  int
	ActiveAlerts   int
	RecentAlerts   []model.StockAlert
}

// Dashboard handles GET /.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	data := dashboardPage{PageData: s.page(w, r, "Dashboard")}
	tok := token(r.Context())

	var (
		products   []model.Product
		warehouses []model.Warehouse
		records    []model.InventoryRecord
		orders     []model.PurchaseOrder
		alerts     []model.StockAlert
	)

	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		products, err = s.Backend.ListProducts(gctx, tok)
		return err
	})
	g.Go(func() error {
		var err error
		warehouses, err = s.Backend.ListWarehouses(gctx, tok)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.Backend.ListInventory(gctx, tok)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = s.Backend.ListPurchaseOrders(gctx, tok)
		return err
	})
	g.Go(func() error {
		var err error
		alerts, err = s.Backend.ListStockAlerts(gctx, tok)
		return err
	})

	if err := g.Wait(); err != nil {
		s.Log.Error("failed to load dashboard", "error", err)
		data.Flash = errorFlash(err)
		s.Templates.Render(w, "dashboard.html", &data)
		return
	}

	data.ProductCount = len(products)
	data.WarehouseCount = len(warehouses)
	data.InventoryCount = len(records)
	for _, o := range orders {
		if o.Pending() {
			data.PendingOrders++
		}
	}
	data.ActiveAlerts = len(alerts)

	if len(alerts) > 5 {
		alerts = alerts[:5]
	}
	data.RecentAlerts = alerts

	s.Templates.Render(w, "dashboard.html", &data)
}
