// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/fizikfinito/fizikfinito/internal/app/system/viewdata"
)

// pageData is the view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
}

// Handler is the errors feature handler.
// No backends needed; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders the "page not found" page. Mounted as the router's
// NotFound handler.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	RenderNotFound(w, r, "Aradığınız sayfa bulunamadı.", "/")
}

func renderError(w http.ResponseWriter, r *http.Request, status int, title, msg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, title, backURL),
		Message: msg,
	}
	w.WriteHeader(status)
	templates.Render(w, r, "error_page", data)
}
