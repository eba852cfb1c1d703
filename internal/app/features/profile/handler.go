// internal/app/features/profile/handler.go
package profile

import (
	"errors"
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

// Handler serves the profile page. Role-dependent fields lock once set:
// a record that already carries a role renders read-only.
type Handler struct {
	Users  *userstore.Store
	Log    *zap.Logger
	ErrLog *errorsfeature.ErrorLogger
}

func NewHandler(users *userstore.Store, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  users,
		Log:    logger,
		ErrLog: errLog,
	}
}

type pageData struct {
	viewdata.BaseVM

	FirstName string
	LastName  string
	Email     string

	Role  string
	Sinif string
	Alan  string
	Brans string

	Locked    bool
	ShowSaved bool

	Roles  []models.Role
	Sinifs []string
	Alans  []string

	ErrorMessage string
}

func (h *Handler) newPageData(r *http.Request, user *auth.SessionUser, record *models.User) pageData {
	data := pageData{
		BaseVM:    viewdata.NewBaseVM(r, "Profilim", "/"),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Roles:     models.AllRoles,
		Sinifs:    models.AllSinifs,
		Alans:     models.AllAlans,
	}
	if record != nil {
		if record.FirstName != "" {
			data.FirstName = record.FirstName
		}
		if record.LastName != "" {
			data.LastName = record.LastName
		}
		data.Role = record.Role
		data.Sinif = record.Sinif
		data.Alan = record.Alan
		data.Brans = record.Brans
		data.Locked = record.Role != ""
	}
	return data
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /profile                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "profile lookup")
	defer cancel()

	record, err := h.Users.FindByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, userstore.ErrNotFound) {
		h.ErrLog.LogServerError(w, r, "profile lookup failed", err,
			"Profiliniz şu anda yüklenemiyor. Lütfen daha sonra tekrar deneyin.", "/")
		return
	}

	data := h.newPageData(r, user, record)
	data.ShowSaved = r.URL.Query().Get("saved") == "1"
	templates.Render(w, r, "profile", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /profile                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse profile form failed", err,
			"İstek işlenemedi. Lütfen tekrar deneyin.", "/profile")
		return
	}

	role := r.PostFormValue("role")
	sinif := r.PostFormValue("sinif")
	alan := r.PostFormValue("alan")
	brans := r.PostFormValue("brans")

	if msg := validate(role, sinif, alan, brans); msg != "" {
		data := h.newPageData(r, user, nil)
		data.Role = role
		data.Sinif = sinif
		data.Alan = alan
		data.Brans = brans
		data.ErrorMessage = msg
		w.WriteHeader(http.StatusBadRequest)
		templates.Render(w, r, "profile", data)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "profile update")
	defer cancel()

	record, err := h.Users.FindOrCreate(ctx, user.Email, user.FirstName, user.LastName)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "profile upsert failed", err,
			"Profiliniz kaydedilemedi. Lütfen daha sonra tekrar deneyin.", "/profile")
		return
	}

	// Locked profiles never accept a second write.
	if record.Role != "" {
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	profile := buildProfile(role, sinif, alan, brans)
	if err := h.Users.UpdateProfile(ctx, record.ID, profile); err != nil {
		h.ErrLog.LogServerError(w, r, "profile update failed", err,
			"Profiliniz kaydedilemedi. Lütfen daha sonra tekrar deneyin.", "/profile")
		return
	}

	h.Log.Info("profile saved",
		zap.String("user_id", string(record.ID)),
		zap.String("role", role))
	http.Redirect(w, r, "/profile?saved=1", http.StatusSeeOther)
}

// validate applies the role-dependent field rules and returns a Turkish
// error message, or "" when the submission is acceptable.
func validate(role, sinif, alan, brans string) string {
	if role == "" || !models.IsValidRole(role) {
		return "Lütfen profil tipinizi seçin."
	}
	if role == models.RoleStudent {
		if sinif == "" {
			return "Lütfen sınıfınızı seçin."
		}
		if models.TrackRequired(sinif) && alan == "" {
			return "Lütfen alanınızı seçin."
		}
	}
	if role == models.RoleTeacher && brans == "" {
		return "Lütfen branşınızı girin."
	}
	return ""
}

// buildProfile narrows the submitted fields to the ones that apply to the
// chosen role; the store nulls out the rest.
func buildProfile(role, sinif, alan, brans string) userstore.Profile {
	p := userstore.Profile{Role: role}
	switch role {
	case models.RoleStudent:
		p.Sinif = sinif
		if models.TrackRequired(sinif) {
			p.Alan = alan
		}
	case models.RoleTeacher:
		p.Brans = brans
	}
	return p
}
