// Package visitor manages the anonymous visitorId cookie used to attribute
// click events when no user is signed in.
package visitor

import (
	"net/http"

	"github.com/google/uuid"
)

// CookieName holds the anonymous visitor UUID.
const CookieName = "visitorId"

const maxAge = 365 * 24 * 60 * 60 // one year

// ID returns the visitor id from the request cookie, minting a fresh UUID
// when none is present. minted reports whether the caller must Set the
// cookie on the response.
func ID(r *http.Request) (id string, minted bool) {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value, false
	}
	return uuid.NewString(), true
}

// Set writes the visitor id cookie (HttpOnly; only the server reads it).
func Set(w http.ResponseWriter, id string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
