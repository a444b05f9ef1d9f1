package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"stockdesk/internal/backend"
	"stockdesk/internal/session"
	webembed "stockdesk/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"statusName": func(status string) string {
			switch status {
			case "PENDING":
				return "Pending"
			case "FULFILLED":
				return "Fulfilled"
			default:
				return status
			}
		},
		"money": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"shortDate": func(ts string) string {
			// Backend timestamps are ISO 8601; the date part is enough
			// for tables.
			if i := strings.IndexByte(ts, 'T'); i > 0 {
				return ts[:i]
			}
			return ts
		},
	}
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	tfs := webembed.TemplatesFS()

	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	pages := []string{
		"login.html",
		"register.html",
		"dashboard.html",
		"products.html",
		"product_form.html",
		"warehouses.html",
		"warehouse_form.html",
		"inventory.html",
		"inventory_form.html",
		"purchase_orders.html",
		"purchase_order_form.html",
		"stock_alerts.html",
		"report_turnover.html",
		"report_valuation.html",
		"report_trends.html",
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with the given data.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title string
	User  *session.Session
	Flash *Flash
}

// Server holds all dependencies for page handlers.
type Server struct {
	Backend   *backend.Client
	Sessions  *session.Manager
	Templates *Templates
	Log       *slog.Logger
}

// page builds the base PageData for an authenticated request, consuming
// any pending flash message.
func (s *Server) page(w http.ResponseWriter, r *http.Request, title string) PageData {
	return PageData{
		Title: title,
		User:  CurrentSession(r.Context()),
		Flash: PopFlash(w, r),
	}
}
