// internal/app/features/click/handler.go
package click

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	clickstore "github.com/fizikfinito/fizikfinito/internal/app/store/clicks"
	"github.com/fizikfinito/fizikfinito/internal/app/system/auth"
	"github.com/fizikfinito/fizikfinito/internal/app/system/timeouts"
	"github.com/fizikfinito/fizikfinito/internal/app/system/visitor"
)

// Handler records link clicks posted by the page script. Signed-in users
// are attributed by user id; anonymous visitors get a random visitor id
// minted into a cookie on their first click.
type Handler struct {
	Clicks *clickstore.Store
	Log    *zap.Logger

	// SecureCookies controls the Secure flag on the visitor cookie.
	SecureCookies bool
}

func NewHandler(clicks *clickstore.Store, secureCookies bool, logger *zap.Logger) *Handler {
	return &Handler{
		Clicks:        clicks,
		Log:           logger,
		SecureCookies: secureCookies,
	}
}

type clickRequest struct {
	Link string `json:"link"`
}

type clickResponse struct {
	OK bool `json:"ok"`
}

// HandleClick accepts {"link": "..."} and appends a click event.
// POST /click
func (h *Handler) HandleClick(w http.ResponseWriter, r *http.Request) {
	var req clickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Log.Warn("malformed click payload", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, clickResponse{OK: false})
		return
	}
	link := strings.TrimSpace(req.Link)
	if link == "" {
		writeJSON(w, http.StatusBadRequest, clickResponse{OK: false})
		return
	}

	var userID, visitorID string
	var minted bool
	if user, ok := auth.CurrentUser(r); ok {
		userID = user.ID
	} else {
		visitorID, minted = visitor.ID(r)
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "click record")
	defer cancel()

	if err := h.Clicks.Record(ctx, link, userID, visitorID); err != nil {
		h.Log.Error("click record failed", zap.String("link", link), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, clickResponse{OK: false})
		return
	}

	// The cookie is only written once the click actually landed, so a
	// failed insert retries with a fresh id next time.
	if minted {
		visitor.Set(w, visitorID, h.SecureCookies)
	}
	writeJSON(w, http.StatusOK, clickResponse{OK: true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
