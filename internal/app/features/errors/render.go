// internal/app/features/errors/render.go
package errors

import "net/http"

// RenderBadRequest shows a friendly "bad request" page.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "İstek işlenemedi. Lütfen tekrar deneyin."
	}
	renderError(w, r, http.StatusBadRequest, "Geçersiz İstek", msg, backURL)
}

// RenderServerError shows a friendly "something went wrong" page.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "Bir şeyler ters gitti. Lütfen daha sonra tekrar deneyin."
	}
	renderError(w, r, http.StatusInternalServerError, "Sunucu Hatası", msg, backURL)
}

// RenderNotFound shows a friendly "not found" page.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "Aradığınız sayfa bulunamadı."
	}
	renderError(w, r, http.StatusNotFound, "Sayfa Bulunamadı", msg, backURL)
}

// RenderForbidden shows a friendly "access denied" page.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "Bu sayfayı görüntüleme yetkiniz yok."
	}
	renderError(w, r, http.StatusForbidden, "Erişim Engellendi", msg, backURL)
}
