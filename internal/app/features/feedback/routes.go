// internal/app/features/feedback/routes.go
package feedback

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeForm)
	r.Post("/", h.HandleSubmit)
	return r
}
