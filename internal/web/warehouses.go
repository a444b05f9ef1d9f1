package web

import (
	"net/http"

	"stockdesk/internal/forms"
	"stockdesk/internal/model"
)

type warehousesPage struct {
	PageData
	Warehouses []model.Warehouse
}

type warehouseFormPage struct {
	PageData
	Form        forms.Warehouse
	FieldErrors forms.Errors
	Action      string
	Submit      string
}

// WarehousesPage handles GET /warehouses.
func (s *Server) WarehousesPage(w http.ResponseWriter, r *http.Request) {
	data := warehousesPage{PageData: s.page(w, r, "Warehouses")}

	warehouses, err := s.Backend.ListWarehouses(r.Context(), token(r.Context()))
	if err != nil {
		s.Log.Error("failed to list warehouses", "error", err)
		data.Flash = errorFlash(err)
	}
	data.Warehouses = warehouses

	s.Templates.Render(w, "warehouses.html", &data)
}

// WarehouseCreatePage handles GET /warehouses/new.
func (s *Server) WarehouseCreatePage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "warehouse_form.html", &warehouseFormPage{
		PageData: s.page(w, r, "New warehouse"),
		Action:   "/warehouses/new",
		Submit:   "Create",
	})
}

// WarehouseCreateSubmit handles POST /warehouses/new.
func (s *Server) WarehouseCreateSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	form := forms.ParseWarehouse(r.PostForm)
	data := warehouseFormPage{
		PageData: s.page(w, r, "New warehouse"),
		Form:     form,
		Action:   "/warehouses/new",
		Submit:   "Create",
	}

	if errs := form.Validate(); !errs.Valid() {
		data.FieldErrors = errs
		s.Templates.Render(w, "warehouse_form.html", &data)
		return
	}

	if _, err := s.Backend.CreateWarehouse(r.Context(), token(r.Context()), form.Payload()); err != nil {
		s.Log.Error("failed to create warehouse", "error", err)
		data.Flash = errorFlash(err)
		s.Templates.Render(w, "warehouse_form.html", &data)
		return
	}

	s.Log.Info("warehouse created", "user", CurrentSession(r.Context()).Username, "warehouse", form.Name)
	http.Redirect(w, r, "/warehouses", http.StatusSeeOther)
}

// WarehouseEditPage handles GET /warehouses/{id}/edit.
func (s *Server) WarehouseEditPage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	warehouse, err := s.Backend.GetWarehouse(r.Context(), token(r.Context()), id)
	if err != nil {
		s.Log.Error("failed to get warehouse", "id", id, "error", err)
		setErrorFlash(w, err)
		http.Redirect(w, r, "/warehouses", http.StatusSeeOther)
		return
	}

	s.Templates.Render(w, "warehouse_form.html", &warehouseFormPage{
		PageData: s.page(w, r, "Edit warehouse"),
		Form:     forms.WarehouseFromModel(warehouse),
		Action:   "/warehouses/" + id + "/edit",
		Submit:   "Save",
	})
}

// WarehouseEditSubmit handles POST /warehouses/{id}/edit.
func (s *Server) WarehouseEditSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	form := forms.ParseWarehouse(r.PostForm)
	data := warehouseFormPage{
		PageData: s.page(w, r, "Edit warehouse"),
		Form:     form,
		Action:   "/warehouses/" + id + "/edit",
		Submit:   "Save",
	}

	if errs := form.Validate(); !errs.Valid() {
		data.FieldErrors = errs
		s.Templates.Render(w, "warehouse_form.html", &data)
		return
	}

	if _, err := s.Backend.UpdateWarehouse(r.Context(), token(r.Context()), id, form.Payload()); err != nil {
		s.Log.Error("failed to update warehouse", "id", id, "error", err)
		data.Flash = errorFlash(err)
		s.Templates.Render(w, "warehouse_form.html", &data)
		return
	}

	s.Log.Info("warehouse updated", "user", CurrentSession(r.Context()).Username, "warehouse", form.Name)
	http.Redirect(w, r, "/warehouses", http.StatusSeeOther)
}

// WarehouseDeleteSubmit handles POST /warehouses/{id}/delete.
func (s *Server) WarehouseDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.Backend.DeleteWarehouse(r.Context(), token(r.Context()), id); err != nil {
		s.Log.Error("failed to delete warehouse", "id", id, "error", err)
		setErrorFlash(w, err)
	} else {
		s.Log.Info("warehouse deleted", "user", CurrentSession(r.Context()).Username, "id", id)
	}

	http.Redirect(w, r, "/warehouses", http.StatusSeeOther)
}
