// internal/app/features/cookiepolicy/routes.go
package cookiepolicy

import "github.com/go-chi/chi/v5"

// PolicyRoutes serves the static policy page.
func PolicyRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServePolicy)
	return r
}

// ConsentRoutes serves the banner's accept/decline posts.
func ConsentRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/accept", h.HandleAccept)
	r.Post("/decline", h.HandleDecline)
	return r
}
