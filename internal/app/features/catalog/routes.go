// internal/app/features/catalog/routes.go
package catalog

import "github.com/go-chi/chi/v5"

// Routes wires the browser pages. Mounted at the router root, so the
// four-level path patterns live here rather than in bootstrap.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeBrowse)
	r.Get("/{category}", h.ServeBrowse)
	r.Get("/{category}/{subcategory}", h.ServeBrowse)
	r.Get("/{category}/{subcategory}/{topic}", h.ServeBrowse)
	r.Get("/{category}/{subcategory}/{topic}/{experiment}", h.ServeBrowse)
	return r
}
