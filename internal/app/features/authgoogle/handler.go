// internal/app/features/authgoogle/handler.go
package authgoogle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	userstore "github.com/fizikfinito/fizikfinito/internal/app/store/users"
	"github.com/fizikfinito/fizikfinito/internal/app/system/auth"
	"github.com/fizikfinito/fizikfinito/internal/app/system/normalize"
	"github.com/fizikfinito/fizikfinito/internal/app/system/timeouts"
)

// Handler runs the Google OAuth flow and turns a Google identity into an
// application user record plus a session.
type Handler struct {
	Users      *userstore.Store
	Log        *zap.Logger
	SessionMgr *auth.SessionManager

	ClientID     string
	ClientSecret string
	RedirectURL  string

	// UserInfoURL overrides Google's userinfo endpoint; tests point it at
	// a local server. Empty means the real endpoint.
	UserInfoURL string
}

// NewHandler creates a Google OAuth handler. baseURL is the public origin
// the callback is registered under, e.g. "https://fizikfinito.com".
func NewHandler(
	users *userstore.Store,
	sessionMgr *auth.SessionManager,
	clientID, clientSecret, baseURL string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Users:        users,
		Log:          logger,
		SessionMgr:   sessionMgr,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  strings.TrimRight(baseURL, "/") + "/callback",
	}
}

func (h *Handler) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.ClientID,
		ClientSecret: h.ClientSecret,
		RedirectURL:  h.RedirectURL,
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// IsConfigured reports whether Google OAuth credentials are present.
func (h *Handler) IsConfigured() bool {
	return h.ClientID != "" && h.ClientSecret != ""
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /google                                                                 |
| Starts the flow: mints a state nonce into the session and redirects to      |
| Google's consent screen.                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeStart(w http.ResponseWriter, r *http.Request) {
	if !h.IsConfigured() {
		h.Log.Warn("Google OAuth not configured")
		http.Redirect(w, r, "/login?error=google_not_configured", http.StatusSeeOther)
		return
	}

	state := uuid.NewString()
	if err := h.SessionMgr.SetOAuthState(w, r, state); err != nil {
		h.Log.Error("failed to store OAuth state", zap.Error(err))
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
		return
	}

	url := h.oauth2Config().AuthCodeURL(state)
	h.Log.Debug("initiating Google OAuth flow", zap.String("redirect_url", url))
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /callback                                                               |
| Validates state, exchanges the code, fetches the Google profile, upserts    |
| the user record by email, and signs the session in.                         |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeCallback(w http.ResponseWriter, r *http.Request) {
	if errParam := r.URL.Query().Get("error"); errParam != "" {
		h.Log.Warn("Google OAuth error",
			zap.String("error", errParam),
			zap.String("description", r.URL.Query().Get("error_description")))
		http.Redirect(w, r, "/login?error=google_denied", http.StatusSeeOther)
		return
	}

	state := r.URL.Query().Get("state")
	saved, err := h.SessionMgr.TakeOAuthState(w, r)
	if err != nil || state == "" || state != saved {
		h.Log.Warn("invalid OAuth state", zap.Error(err))
		http.Redirect(w, r, "/login?error=invalid_state", http.StatusSeeOther)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		h.Log.Warn("missing OAuth code parameter")
		http.Redirect(w, r, "/login?error=invalid_code", http.StatusSeeOther)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "Google OAuth callback")
	defer cancel()

	token, err := h.oauth2Config().Exchange(ctx, code)
	if err != nil {
		h.Log.Error("failed to exchange OAuth code", zap.Error(err))
		http.Redirect(w, r, "/login?error=token_exchange", http.StatusSeeOther)
		return
	}

	info, err := h.fetchUserInfo(ctx, token)
	if err != nil {
		h.Log.Error("failed to fetch Google user info", zap.Error(err))
		http.Redirect(w, r, "/login?error=user_info", http.StatusSeeOther)
		return
	}

	email := normalize.Email(info.Email)
	if email == "" {
		h.Log.Warn("Google account has no email", zap.String("google_id", info.ID))
		http.Redirect(w, r, "/login?error=missing_email", http.StatusSeeOther)
		return
	}

	user, err := h.Users.FindOrCreate(ctx, email, normalize.Name(info.GivenName), normalize.Name(info.FamilyName))
	if err != nil {
		h.Log.Error("user upsert failed", zap.String("email", email), zap.Error(err))
		http.Redirect(w, r, "/login?error=upsert_failed", http.StatusSeeOther)
		return
	}

	sessionUser := auth.SessionUser{
		ID:              string(user.ID),
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		AvatarURL:       info.Picture,
		Role:            user.Role,
		ConsentAccepted: user.ConsentAccepted,
	}
	if err := h.SessionMgr.SignIn(w, r, sessionUser); err != nil {
		h.Log.Error("failed to create session", zap.Error(err))
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
		return
	}

	h.Log.Info("user signed in",
		zap.String("user_id", string(user.ID)),
		zap.String("email", email),
		zap.Bool("consent_accepted", user.ConsentAccepted))

	// First stop after login is the consent gate; already-consented users
	// go straight to their profile.
	if !user.ConsentAccepted {
		http.Redirect(w, r, "/kvkk", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Google userinfo                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// googleUserInfo is the subset of Google's userinfo response we use.
type googleUserInfo struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

func (h *Handler) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	endpoint := h.UserInfoURL
	if endpoint == "" {
		endpoint = googleUserInfoURL
	}

	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))
	resp, err := client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode user info: %w", err)
	}
	return &info, nil
}
