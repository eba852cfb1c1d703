// internal/app/features/click/routes.go
package click

import "github.com/go-chi/chi/v5"

// Routes is mounted outside the CSRF-protected group: the tracking call
// comes from page script as a plain JSON POST.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleClick)
	return r
}
