// internal/app/features/feedback/handler.go
package feedback

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	errorsfeature "github.com/fizikfinito/fizikfinito/internal/app/features/errors"
	suggestionstore "github.com/fizikfinito/fizikfinito/internal/app/store/suggestions"
	userstore "github.com/fizikfinito/fizikfinito/internal/app/store/users"
	"github.com/fizikfinito/fizikfinito/internal/app/system/auth"
	"github.com/fizikfinito/fizikfinito/internal/app/system/timeouts"
	"github.com/fizikfinito/fizikfinito/internal/app/system/viewdata"
	"github.com/fizikfinito/fizikfinito/internal/domain/models"
)

// Handler serves the suggestion form. Anyone can submit; signed-in users
// get their name, email and saved profile type prefilled.
type Handler struct {
	Suggestions *suggestionstore.Store
	Users       *userstore.Store
	Log         *zap.Logger
	ErrLog      *errorsfeature.ErrorLogger

	sanitizer *bluemonday.Policy
}

func NewHandler(suggestions *suggestionstore.Store, users *userstore.Store, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Suggestions: suggestions,
		Users:       users,
		Log:         logger,
		ErrLog:      errLog,
		sanitizer:   bluemonday.StrictPolicy(),
	}
}

type pageData struct {
	viewdata.BaseVM

	Isim  string
	Email string
	Role  string
	Mesaj string

	Roles     []models.Role
	Submitted bool

	ErrorMessage string
}

func (h *Handler) newPageData(r *http.Request) pageData {
	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, "Öneri", "/"),
		Roles:  models.AllRoles,
	}
	if user, ok := auth.CurrentUser(r); ok {
		data.Isim = user.FullName()
		data.Email = user.Email
		data.Role = user.Role
	}
	return data
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /oneri                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	data := h.newPageData(r)
	data.Submitted = r.URL.Query().Get("sent") == "1"

	// A saved profile type beats the session copy; a lookup failure just
	// means no prefill.
	if user, ok := auth.CurrentUser(r); ok {
		ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "suggestion prefill lookup")
		defer cancel()

		record, err := h.Users.FindByEmail(ctx, user.Email)
		switch {
		case err == nil && record.Role != "":
			data.Role = record.Role
		case err != nil && !errors.Is(err, userstore.ErrNotFound):
			h.Log.Warn("suggestion prefill lookup failed", zap.Error(err))
		}
	}

	templates.Render(w, r, "feedback_form", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /oneri                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse suggestion form failed", err,
			"İstek işlenemedi. Lütfen tekrar deneyin.", "/oneri")
		return
	}

	role := r.PostFormValue("role")
	mesaj := strings.TrimSpace(h.sanitizer.Sanitize(r.PostFormValue("mesaj")))

	if !models.IsValidRole(role) {
		h.rerender(w, r, role, r.PostFormValue("mesaj"), "Lütfen kim olduğunuzu seçin.")
		return
	}
	if mesaj == "" {
		h.rerender(w, r, role, "", "Lütfen mesajınızı yazın.")
		return
	}

	sug := models.Suggestion{
		Role:  role,
		Mesaj: mesaj,
	}
	user, signedIn := auth.CurrentUser(r)
	if signedIn {
		sug.Isim = user.FullName()
		sug.Email = user.Email
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "suggestion submit")
	defer cancel()

	if err := h.Suggestions.Create(ctx, sug); err != nil {
		h.ErrLog.LogServerError(w, r, "suggestion create failed", err,
			"Öneriniz kaydedilemedi. Lütfen daha sonra tekrar deneyin.", "/oneri")
		return
	}

	// Remember the submitted profile type on the user record; a failure
	// here never blocks the submission.
	if signedIn && user.ID != "" {
		if err := h.Users.SetRole(ctx, models.ID(user.ID), role); err != nil {
			h.Log.Warn("failed to save role from suggestion",
				zap.String("user_id", user.ID), zap.Error(err))
		}
	}

	h.Log.Info("suggestion received", zap.String("role", role))
	http.Redirect(w, r, "/oneri?sent=1", http.StatusSeeOther)
}

func (h *Handler) rerender(w http.ResponseWriter, r *http.Request, role, mesaj, msg string) {
	data := h.newPageData(r)
	data.Role = role
	data.Mesaj = mesaj
	data.ErrorMessage = msg
	w.WriteHeader(http.StatusBadRequest)
	templates.Render(w, r, "feedback_form", data)
}
