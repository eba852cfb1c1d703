package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	isAuthKey     = "is_authenticated"
	userIDKey     = "user_id"
	userEmailKey  = "user_email"
	firstNameKey  = "first_name"
	lastNameKey   = "last_name"
	avatarURLKey  = "avatar_url"
	userRoleKey   = "user_role"
	consentKey    = "consent_accepted"
	oauthStateKey = "oauth_state"
)

// SessionUser is what we cache in the session & inject into r.Context().
type SessionUser struct {
	ID              string
	Email           string
	FirstName       string
	LastName        string
	AvatarURL       string
	Role            string
	ConsentAccepted bool
}

// FullName joins the first and last name, tolerating either being empty.
func (u SessionUser) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// SessionManager owns the cookie store and the auth middleware. It is
// constructed once in bootstrap and handed to the features that need it;
// there is no package-level store.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewSessionManager builds the cookie store for the named session cookie.
// The `secure` flag controls whether cookies are marked Secure and which
// SameSite mode is used: in production (secure=true) cookies are Secure +
// SameSite=None, over http://localhost use secure=false so Lax cookies are
// accepted.
func NewSessionManager(sessionKey, name, domain string, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}
	if name == "" {
		name = "fizikfinito-session"
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60, // 30 days
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	logger.Info("session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &SessionManager{store: store, name: name, log: logger}, nil
}

// Store exposes the underlying cookie store (routes need its Options).
func (m *SessionManager) Store() *sessions.CookieStore { return m.store }

// GetSession returns the request's session, creating a fresh one when the
// cookie is absent or undecodable.
func (m *SessionManager) GetSession(r *http.Request) (*sessions.Session, error) {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		// A tampered or stale cookie decodes to a securecookie error;
		// treat the visitor as anonymous rather than failing the request.
		if _, ok := err.(securecookie.Error); ok {
			m.log.Debug("session cookie undecodable, starting fresh", zap.Error(err))
			return sess, nil
		}
		return sess, err
	}
	return sess, nil
}

// SignIn writes the user into the session and saves the cookie.
func (m *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, u SessionUser) error {
	sess, err := m.GetSession(r)
	if err != nil {
		return err
	}
	sess.Values[isAuthKey] = true
	sess.Values[userIDKey] = u.ID
	sess.Values[userEmailKey] = u.Email
	sess.Values[firstNameKey] = u.FirstName
	sess.Values[lastNameKey] = u.LastName
	sess.Values[avatarURLKey] = u.AvatarURL
	sess.Values[userRoleKey] = u.Role
	sess.Values[consentKey] = u.ConsentAccepted
	return sess.Save(r, w)
}

// SignOut clears the session cookie.
func (m *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, err := m.GetSession(r)
	if err != nil {
		return err
	}
	sess.Values = map[any]any{}
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// SetConsent flips the consent flag on an existing session (after the
// /kvkk form is accepted) without re-running the whole sign-in.
func (m *SessionManager) SetConsent(w http.ResponseWriter, r *http.Request, accepted bool) error {
	sess, err := m.GetSession(r)
	if err != nil {
		return err
	}
	sess.Values[consentKey] = accepted
	return sess.Save(r, w)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Current-User helper                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the user & “found?” flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

/*─────────────────────────────────────────────────────────────────────────────*
| Middleware                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// LoadSessionUser injects the user into context if they are logged in.
func (m *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := m.GetSession(r)

		if isAuth, _ := sess.Values[isAuthKey].(bool); isAuth {
			u := &SessionUser{
				ID:              getString(sess, userIDKey),
				Email:           getString(sess, userEmailKey),
				FirstName:       getString(sess, firstNameKey),
				LastName:        getString(sess, lastNameKey),
				AvatarURL:       getString(sess, avatarURLKey),
				Role:            getString(sess, userRoleKey),
				ConsentAccepted: getBool(sess, consentKey),
			}
			r = withUser(r, u)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn ensures there is a user in context (set by LoadSessionUser).
// If not signed in:
//   - HTMX: sends HX-Redirect to /login?return=...
//   - HTML: 303 redirect to /login?return=...
//   - API:  401 Unauthorized with a plain error body.
func (m *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}

		ret := url.QueryEscape(currentURI(r))

		if r.Header.Get("HX-Request") == "true" {
			w.Header().Set("HX-Redirect", "/login?return="+ret)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if wantsHTML(r) {
			http.Redirect(w, r, "/login?return="+ret, http.StatusSeeOther)
			return
		}
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
}

// RequireConsent sends a signed-in user who has not yet accepted the
// personal-data terms to /kvkk. It assumes RequireSignedIn already ran, so
// a missing user falls through to the same login redirect.
func (m *SessionManager) RequireConsent(next http.Handler) http.Handler {
	return m.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, _ := CurrentUser(r)
		if u.ConsentAccepted {
			next.ServeHTTP(w, r)
			return
		}

		if r.Header.Get("HX-Request") == "true" {
			w.Header().Set("HX-Redirect", "/kvkk")
			w.WriteHeader(http.StatusForbidden)
			return
		}
		if wantsHTML(r) {
			http.Redirect(w, r, "/kvkk", http.StatusSeeOther)
			return
		}
		http.Error(w, "consent required", http.StatusForbidden)
	}))
}

/*─────────────────────────────────────────────────────────────────────────────*
| OAuth state nonce                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

// SetOAuthState stashes the OAuth state nonce in the session for the
// /callback round trip.
func (m *SessionManager) SetOAuthState(w http.ResponseWriter, r *http.Request, state string) error {
	sess, err := m.GetSession(r)
	if err != nil {
		return err
	}
	sess.Values[oauthStateKey] = state
	return sess.Save(r, w)
}

// TakeOAuthState returns the stashed nonce and removes it, so a state can
// only be consumed once.
func (m *SessionManager) TakeOAuthState(w http.ResponseWriter, r *http.Request) (string, error) {
	sess, err := m.GetSession(r)
	if err != nil {
		return "", err
	}
	state := getString(sess, oauthStateKey)
	delete(sess.Values, oauthStateKey)
	if err := sess.Save(r, w); err != nil {
		return "", err
	}
	return state, nil
}

// helpers

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// WithTestUser injects a SessionUser into the request context. Intended for
// handler tests that need a signed-in request without a real cookie.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

// getString safely extracts a string from a session value.
func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}

func getBool(s *sessions.Session, key string) bool {
	v, _ := s.Values[key].(bool)
	return v
}

func wantsHTML(r *http.Request) bool {
	// Very light heuristic: treat it as HTML if it's HTMX or Accepts text/html.
	if r.Header.Get("HX-Request") == "true" {
		return true
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html")
}

func currentURI(r *http.Request) string {
	// Preserve path + query as a return param.
	u := *r.URL
	return u.RequestURI()
}
