// internal/app/features/cookiepolicy/handler.go
package cookiepolicy

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/fizikfinito/fizikfinito/internal/app/system/cookieconsent"
	"github.com/fizikfinito/fizikfinito/internal/app/system/viewdata"
)

// Handler serves the cookie policy page and the banner endpoints.
type Handler struct {
	Log *zap.Logger

	// CookieDomain scopes the consent cookie to the apex domain so every
	// subdomain sees the same choice.
	CookieDomain string
}

func NewHandler(cookieDomain string, logger *zap.Logger) *Handler {
	return &Handler{
		Log:          logger,
		CookieDomain: cookieDomain,
	}
}

type pageData struct {
	viewdata.BaseVM
	Preferences cookieconsent.Preferences
	Recorded    bool
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /cookie-politikalari                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServePolicy(w http.ResponseWriter, r *http.Request) {
	prefs, recorded := cookieconsent.FromRequest(r)
	data := pageData{
		BaseVM:      viewdata.NewBaseVM(r, "Çerez Politikaları", "/"),
		Preferences: prefs,
		Recorded:    recorded,
	}
	templates.Render(w, r, "cookie_policy", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /cookie-consent/accept and /cookie-consent/decline                     |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	cookieconsent.Write(w, cookieconsent.AcceptAll(), h.CookieDomain)
	h.redirectBack(w, r)
}

func (h *Handler) HandleDecline(w http.ResponseWriter, r *http.Request) {
	cookieconsent.Write(w, cookieconsent.DeclineAll(), h.CookieDomain)
	h.redirectBack(w, r)
}

// redirectBack returns the visitor to the page the banner was on. Only
// same-site paths are accepted.
func (h *Handler) redirectBack(w http.ResponseWriter, r *http.Request) {
	back := r.PostFormValue("back")
	if back == "" || !strings.HasPrefix(back, "/") || strings.HasPrefix(back, "//") {
		back = "/"
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}
