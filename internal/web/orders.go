package web

import (
	"net/http"

	"stockdesk/internal/forms"
	"stockdesk/internal/model"
)

type purchaseOrdersPage struct {
	PageData
	Orders []model.PurchaseOrder
}

type purchaseOrderFormPage struct {
	PageData
	Form        forms.PurchaseOrder
	FieldErrors forms.Errors
	Products    []model.Product
	Warehouses  []model.Warehouse
}

// PurchaseOrdersPage handles GET /purchase-orders.
func (s *Server) PurchaseOrdersPage(w http.ResponseWriter, r *http.Request) {
	data := purchaseOrdersPage{PageData: s.page(w, r, "Purchase orders")}

	orders, err := s.Backend.ListPurchaseOrders(r.Context(), token(r.Context()))
	if err != nil {
		s.Log.Error("failed to list purchase orders", "error", err)
		data.Flash = errorFlash(err)
	}
	data.Orders = orders

	s.Templates.Render(w, "purchase_orders.html", &data)
}

// PurchaseOrderCreatePage handles GET /purchase-orders/new. Orders
// reference products and warehouses by name, so the dropdowns offer names.
func (s *Server) PurchaseOrderCreatePage(w http.ResponseWriter, r *http.Request) {
	data := purchaseOrderFormPage{PageData: s.page(w, r, "New purchase order")}

	products, warehouses, err := s.fetchCatalog(r.Context(), token(r.Context()))
	if err != nil {
		s.Log.Error("failed to load catalog for purchase order form", "error", err)
		data.Flash = errorFlash(err)
	}
	data.Products = products
	data.Warehouses = warehouses

	s.Templates.Render(w, "purchase_order_form.html", &data)
}

// PurchaseOrderCreateSubmit handles POST /purchase-orders/new.
func (s *Server) PurchaseOrderCreateSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	form := forms.ParsePurchaseOrder(r.PostForm)
	render := func(errs forms.Errors, flash *Flash) {
		data := purchaseOrderFormPage{
			PageData:    s.page(w, r, "New purchase order"),
			Form:        form,
			FieldErrors: errs,
		}
		if flash != nil {
			data.Flash = flash
		}
		products, warehouses, err := s.fetchCatalog(r.Context(), token(r.Context()))
		if err != nil {
			s.Log.Error("failed to reload catalog for purchase order form", "error", err)
			if data.Flash == nil {
				data.Flash = errorFlash(err)
			}
		}
		data.Products = products
		data.Warehouses = warehouses
		s.Templates.Render(w, "purchase_order_form.html", &data)
	}

	if errs := form.Validate(); !errs.Valid() {
		render(errs, nil)
		return
	}

	if _, err := s.Backend.CreatePurchaseOrder(r.Context(), token(r.Context()), form.Payload()); err != nil {
		s.Log.Error("failed to create purchase order", "error", err)
		render(nil, errorFlash(err))
		return
	}

	s.Log.Info("purchase order created", "user", CurrentSession(r.Context()).Username,
		"supplier", form.SupplierName, "product", form.ProductName)
	http.Redirect(w, r, "/purchase-orders", http.StatusSeeOther)
}

// PurchaseOrderFulfillSubmit handles POST /purchase-orders/{id}/fulfill.
// The backend only accepts the transition while the order is PENDING; the
// current user is recorded as the receiver.
func (s *Server) PurchaseOrderFulfillSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	sess := CurrentSession(r.Context())

	if _, err := s.Backend.FulfillPurchaseOrder(r.Context(), sess.Token, id, sess.Username); err != nil {
		s.Log.Error("failed to fulfill purchase order", "id", id, "error", err)
		setErrorFlash(w, err)
	} else {
		s.Log.Info("purchase order fulfilled", "user", sess.Username, "id", id)
	}

	http.Redirect(w, r, "/purchase-orders", http.StatusSeeOther)
}
