package web

import (
	"net/http"

	"stockdesk/internal/forms"
	"stockdesk/internal/model"
)

type productsPage struct {
	PageData
	Products []model.Product
}

type productFormPage struct {
	PageData
	Form        forms.Product
	FieldErrors forms.Errors
	Action      string
	Submit      string
}

// ProductsPage handles GET /products.
func (s *Server) ProductsPage(w http.ResponseWriter, r *http.Request) {
	data := productsPage{PageData: s.page(w, r, "Products")}

	products, err := s.Backend.ListProducts(r.Context(), token(r.Context()))
	if err != nil {
		s.Log.Error("failed to list products", "error", err)
		data.Flash = errorFlash(err)
	}
	data.Products = products

	s.Templates.Render(w, "products.html", &data)
}

// ProductCreatePage handles GET /products/new.
func (s *Server) ProductCreatePage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "product_form.html", &productFormPage{
		PageData: s.page(w, r, "New product"),
		Action:   "/products/new",
		Submit:   "Create",
	})
}

// ProductCreateSubmit handles POST /products/new.
func (s *Server) ProductCreateSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	form := forms.ParseProduct(r.PostForm)
	data := productFormPage{
		PageData: s.page(w, r, "New product"),
		Form:     form,
		Action:   "/products/new",
		Submit:   "Create",
	}

	if errs := form.Validate(); !errs.Valid() {
		data.FieldErrors = errs
		s.Templates.Render(w, "product_form.html", &data)
		return
	}

	if _, err := s.Backend.CreateProduct(r.Context(), token(r.Context()), form.Payload()); err != nil {
		s.Log.Error("failed to create product", "error", err)
		data.Flash = errorFlash(err)
		s.Templates.Render(w, "product_form.html", &data)
		return
	}

	s.Log.Info("product created", "user", CurrentSession(r.Context()).Username, "product", form.Name)
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

// ProductEditPage handles GET /products/{id}/edit.
func (s *Server) ProductEditPage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	product, err := s.Backend.GetProduct(r.Context(), token(r.Context()), id)
	if err != nil {
		// Nothing to edit: flash and fall back to the list.
		s.Log.Error("failed to get product", "id", id, "error", err)
		setErrorFlash(w, err)
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}

	s.Templates.Render(w, "product_form.html", &productFormPage{
		PageData: s.page(w, r, "Edit product"),
		Form:     forms.ProductFromModel(product),
		Action:   "/products/" + id + "/edit",
		Submit:   "Save",
	})
}

// ProductEditSubmit handles POST /products/{id}/edit.
func (s *Server) ProductEditSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	form := forms.ParseProduct(r.PostForm)
	data := productFormPage{
		PageData: s.page(w, r, "Edit product"),
		Form:     form,
		Action:   "/products/" + id + "/edit",
		Submit:   "Save",
	}

	if errs := form.Validate(); !errs.Valid() {
		data.FieldErrors = errs
		s.Templates.Render(w, "product_form.html", &data)
		return
	}

	if _, err := s.Backend.UpdateProduct(r.Context(), token(r.Context()), id, form.Payload()); err != nil {
		s.Log.Error("failed to update product", "id", id, "error", err)
		data.Flash = errorFlash(err)
		s.Templates.Render(w, "product_form.html", &data)
		return
	}

	s.Log.Info("product updated", "user", CurrentSession(r.Context()).Username, "product", form.Name)
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

// ProductDeleteSubmit handles POST /products/{id}/delete.
func (s *Server) ProductDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.Backend.DeleteProduct(r.Context(), token(r.Context()), id); err != nil {
		s.Log.Error("failed to delete product", "id", id, "error", err)
		setErrorFlash(w, err)
	} else {
		s.Log.Info("product deleted", "user", CurrentSession(r.Context()).Username, "id", id)
	}

	// The list page re-fetches on load, so the redirect doubles as the
	// post-delete refresh.
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}
