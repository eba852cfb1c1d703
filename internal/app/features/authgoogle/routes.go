// internal/app/features/authgoogle/routes.go
package authgoogle

import "github.com/go-chi/chi/v5"

// Routes wires the OAuth endpoints. Mounted at the router root because
// the callback URL registered with Google is absolute.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/google", h.ServeStart)
	r.Get("/callback", h.ServeCallback)
	return r
}
