// Package cookieconsent reads and writes the cookieConsent cookie behind
// the banner. The cookie holds a JSON object with four categories; earlier
// site revisions stored the literal strings "accepted" and "declined", so
// the parser accepts those too and maps them onto the structured form.
package cookieconsent

import (
	"encoding/json"
	"net/http"
	"net/url"
)

// CookieName is shared with the client-side banner script, which reads the
// preferences to decide whether to show the banner again.
const CookieName = "cookieConsent"

const maxAge = 365 * 24 * 60 * 60 // one year

// Preferences are the four consent categories. Necessary is always true in
// any recorded preference set.
type Preferences struct {
	Necessary       bool `json:"necessary"`
	Personalization bool `json:"personalization"`
	Marketing       bool `json:"marketing"`
	Analytics       bool `json:"analytics"`
}

// AcceptAll returns preferences with every category granted.
func AcceptAll() Preferences {
	return Preferences{Necessary: true, Personalization: true, Marketing: true, Analytics: true}
}

// DeclineAll returns preferences with only the necessary category.
func DeclineAll() Preferences {
	return Preferences{Necessary: true}
}

// Parse decodes a cookie value into preferences. ok is false when the value
// records no usable consent (empty or garbage), which means the banner
// should be shown.
func Parse(value string) (Preferences, bool) {
	// The structured form is written URL-encoded (quotes and commas are
	// not valid raw cookie bytes); the legacy literals never were.
	if dec, err := url.QueryUnescape(value); err == nil {
		value = dec
	}
	switch value {
	case "":
		return Preferences{}, false
	case "accepted":
		return AcceptAll(), true
	case "declined":
		return DeclineAll(), true
	}

	var p Preferences
	if err := json.Unmarshal([]byte(value), &p); err != nil {
		return Preferences{}, false
	}
	// A structured value that never granted the necessary category is not
	// something the banner writes; treat it as unrecorded.
	if !p.Necessary {
		return Preferences{}, false
	}
	return p, true
}

// FromRequest reads the visitor's recorded preferences. ok is false when no
// valid consent cookie is present.
func FromRequest(r *http.Request) (Preferences, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return Preferences{}, false
	}
	return Parse(c.Value)
}

// Write persists the preferences for a year, scoped to the apex domain so
// subdomains share the choice. The cookie is intentionally not HttpOnly:
// the banner script reads it on the client.
func Write(w http.ResponseWriter, p Preferences, domain string) {
	p.Necessary = true
	b, _ := json.Marshal(p)
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    url.QueryEscape(string(b)),
		Path:     "/",
		Domain:   domain,
		MaxAge:   maxAge,
		SameSite: http.SameSiteLaxMode,
	})
}
