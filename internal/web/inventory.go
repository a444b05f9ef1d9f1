package web

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"

	"stockdesk/internal/forms"
	"stockdesk/internal/model"
)

type inventoryRow struct {
	model.InventoryRecord
	Product   string
	Warehouse string
}

type inventoryPage struct {
	PageData
	Records []inventoryRow
}

type inventoryFormPage struct {
	PageData
	Form        forms.Inventory
	FieldErrors forms.Errors
	Products    []model.Product
	Warehouses  []model.Warehouse
	Action      string
	Submit      string
}

// fetchCatalog loads the product and warehouse lists concurrently. One
// failure cancels the other request and fails the whole call.
func (s *Server) fetchCatalog(ctx context.Context, tok string) ([]model.Product, []model.Warehouse, error) {
	var (
		products   []model.Product
		warehouses []model.Warehouse
	)

	g, gctx := errgroup.WithContext(ctx)
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
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return products, warehouses, nil
}

// InventoryPage handles GET /inventory. The record list and the catalogs
// needed to resolve product/warehouse names load concurrently.
func (s *Server) InventoryPage(w http.ResponseWriter, r *http.Request) {
	data := inventoryPage{PageData: s.page(w, r, "Inventory")}
	tok := token(r.Context())

	var (
		records    []model.InventoryRecord
		products   []model.Product
		warehouses []model.Warehouse
	)

	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		records, err = s.Backend.ListInventory(gctx, tok)
		return err
	})
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

	if err := g.Wait(); err != nil {
		s.Log.Error("failed to load inventory page", "error", err)
		data.Flash = errorFlash(err)
		s.Templates.Render(w, "inventory.html", &data)
		return
	}

	productNames := make(map[string]string, len(products))
	for _, p := range products {
		productNames[p.ID] = p.Name
	}
	warehouseNames := make(map[string]string, len(warehouses))
	for _, wh := range warehouses {
		warehouseNames[wh.ID] = wh.Name
	}

	for _, rec := range records {
		row := inventoryRow{InventoryRecord: rec, Product: rec.ProductName, Warehouse: rec.WarehouseName}
		if name, ok := productNames[rec.ProductID]; ok {
			row.Product = name
		}
		if name, ok := warehouseNames[rec.WarehouseID]; ok {
			row.Warehouse = name
		}
		data.Records = append(data.Records, row)
	}

	s.Templates.Render(w, "inventory.html", &data)
}

// InventoryCreatePage handles GET /inventory/new.
func (s *Server) InventoryCreatePage(w http.ResponseWriter, r *http.Request) {
	data := inventoryFormPage{
		PageData: s.page(w, r, "New inventory record"),
		Action:   "/inventory/new",
		Submit:   "Create",
	}

	products, warehouses, err := s.fetchCatalog(r.Context(), token(r.Context()))
	if err != nil {
		s.Log.Error("failed to load catalog for inventory form", "error", err)
		data.Flash = errorFlash(err)
	}
	data.Products = products
	data.Warehouses = warehouses

	s.Templates.Render(w, "inventory_form.html", &data)
}

// InventoryCreateSubmit handles POST /inventory/new.
func (s *Server) InventoryCreateSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	form := forms.ParseInventory(r.PostForm)
	if errs := form.Validate(); !errs.Valid() {
		s.renderInventoryForm(w, r, "New inventory record", "/inventory/new", "Create", form, errs, nil)
		return
	}

	if _, err := s.Backend.CreateInventory(r.Context(), token(r.Context()), form.Payload()); err != nil {
		s.Log.Error("failed to create inventory", "error", err)
		s.renderInventoryForm(w, r, "New inventory record", "/inventory/new", "Create", form, nil, errorFlash(err))
		return
	}

	s.Log.Info("inventory created", "user", CurrentSession(r.Context()).Username,
		"product", form.ProductID, "warehouse", form.WarehouseID)
	http.Redirect(w, r, "/inventory", http.StatusSeeOther)
}

// InventoryEditPage handles GET /inventory/{id}/edit. The record and both
// catalogs load concurrently; any failure sends the user back to the list.
func (s *Server) InventoryEditPage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	tok := token(r.Context())

	var (
		record     *model.InventoryRecord
		products   []model.Product
		warehouses []model.Warehouse
	)

	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		record, err = s.Backend.GetInventory(gctx, tok, id)
		return err
	})
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

	if err := g.Wait(); err != nil {
		s.Log.Error("failed to load inventory edit page", "id", id, "error", err)
		setErrorFlash(w, err)
		http.Redirect(w, r, "/inventory", http.StatusSeeOther)
		return
	}

	s.Templates.Render(w, "inventory_form.html", &inventoryFormPage{
		PageData:   s.page(w, r, "Edit inventory record"),
		Form:       forms.InventoryFromModel(record),
		Products:   products,
		Warehouses: warehouses,
		Action:     "/inventory/" + id + "/edit",
		Submit:     "Save",
	})
}

// InventoryEditSubmit handles POST /inventory/{id}/edit.
func (s *Server) InventoryEditSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	action := "/inventory/" + id + "/edit"
	form := forms.ParseInventory(r.PostForm)
	if errs := form.Validate(); !errs.Valid() {
		s.renderInventoryForm(w, r, "Edit inventory record", action, "Save", form, errs, nil)
		return
	}

	if _, err := s.Backend.UpdateInventory(r.Context(), token(r.Context()), id, form.Payload()); err != nil {
		s.Log.Error("failed to update inventory", "id", id, "error", err)
		s.renderInventoryForm(w, r, "Edit inventory record", action, "Save", form, nil, errorFlash(err))
		return
	}

	s.Log.Info("inventory updated", "user", CurrentSession(r.Context()).Username, "id", id)
	http.Redirect(w, r, "/inventory", http.StatusSeeOther)
}

// InventoryDeleteSubmit handles POST /inventory/{id}/delete.
func (s *Server) InventoryDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.Backend.DeleteInventory(r.Context(), token(r.Context()), id); err != nil {
		s.Log.Error("failed to delete inventory", "id", id, "error", err)
		setErrorFlash(w, err)
	} else {
		s.Log.Info("inventory deleted", "user", CurrentSession(r.Context()).Username, "id", id)
	}

	http.Redirect(w, r, "/inventory", http.StatusSeeOther)
}

// renderInventoryForm re-renders the inventory form after a failed submit,
// reloading the catalogs so the dropdowns keep their options. The user's
// input is preserved either way.
func (s *Server) renderInventoryForm(w http.ResponseWriter, r *http.Request, title, action, submit string, form forms.Inventory, errs forms.Errors, flash *Flash) {
	data := inventoryFormPage{
		PageData:    s.page(w, r, title),
		Form:        form,
		FieldErrors: errs,
		Action:      action,
		Submit:      submit,
	}
	if flash != nil {
		data.Flash = flash
	}

	products, warehouses, err := s.fetchCatalog(r.Context(), token(r.Context()))
	if err != nil {
		s.Log.Error("failed to reload catalog for inventory form", "error", err)
		if data.Flash == nil {
			data.Flash = errorFlash(err)
		}
	}
	data.Products = products
	data.Warehouses = warehouses

	s.Templates.Render(w, "inventory_form.html", &data)
}
