// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/fizikfinito/fizikfinito/internal/app/system/auth"
)

// Handler clears the session.
type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
}

func NewHandler(sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
	}
}

// ServeLogout expires the session cookie and sends the visitor home.
// POST /logout
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	if user, ok := auth.CurrentUser(r); ok {
		h.Log.Info("user signed out", zap.String("user_id", user.ID))
	}
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.Log.Warn("failed to clear session", zap.Error(err))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
