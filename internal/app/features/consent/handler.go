// internal/app/features/consent/handler.go
package consent

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	errorsfeature "github.com/fizikfinito/fizikfinito/internal/app/features/errors"
	userstore "github.com/fizikfinito/fizikfinito/internal/app/store/users"
	"github.com/fizikfinito/fizikfinito/internal/app/system/auth"
	"github.com/fizikfinito/fizikfinito/internal/app/system/timeouts"
	"github.com/fizikfinito/fizikfinito/internal/app/system/viewdata"
	"github.com/fizikfinito/fizikfinito/internal/domain/models"
)

// Handler runs the one-time personal-data consent gate. A signed-in user
// who has not accepted the terms is held here before any other
// authenticated page.
type Handler struct {
	Users      *userstore.Store
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	ErrLog     *errorsfeature.ErrorLogger
}

func NewHandler(users *userstore.Store, sessionMgr *auth.SessionManager, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:      users,
		Log:        logger,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
	}
}

type pageData struct {
	viewdata.BaseVM
	ErrorMessage string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /kvkk – consent form                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	// Consent is asked exactly once.
	if user.ConsentAccepted {
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, "KVKK Aydınlatma Metni", "/"),
	}
	templates.Render(w, r, "consent_form", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /kvkk – record acceptance                                              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if user.ConsentAccepted {
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse consent form failed", err,
			"İstek işlenemedi. Lütfen tekrar deneyin.", "/kvkk")
		return
	}

	if r.PostFormValue("consent") != "on" {
		data := pageData{
			BaseVM:       viewdata.NewBaseVM(r, "KVKK Aydınlatma Metni", "/"),
			ErrorMessage: "Devam etmek için aydınlatma metnini kabul etmeniz gerekir.",
		}
		w.WriteHeader(http.StatusBadRequest)
		templates.Render(w, r, "consent_form", data)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "consent update")
	defer cancel()

	if err := h.Users.SetConsent(ctx, models.ID(user.ID), true); err != nil {
		h.ErrLog.LogServerError(w, r, "consent update failed", err,
			"Onayınız kaydedilemedi. Lütfen daha sonra tekrar deneyin.", "/kvkk")
		return
	}
	if err := h.SessionMgr.SetConsent(w, r, true); err != nil {
		h.Log.Warn("failed to refresh consent flag in session", zap.Error(err))
	}

	h.Log.Info("consent recorded", zap.String("user_id", user.ID))
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}
