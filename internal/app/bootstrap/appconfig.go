// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
type AppConfig struct {
	// Content repository (Directus) connection
	CMSBaseURL string // e.g. "https://cms.fizikfinito.com"
	CMSToken   string // static API token with read/write access

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: fizikfinito-session)
	SessionDomain string // Cookie domain (blank means current host)

	// CSRF protection
	CSRFKey string // 32-byte key for gorilla/csrf

	// Cookie consent / visitor cookies
	CookieDomain string // Apex domain the consent cookie is scoped to

	// Google OAuth
	GoogleClientID     string
	GoogleClientSecret string

	// Public origin the OAuth callback is registered under
	BaseURL string // e.g. "https://fizikfinito.com" or "http://localhost:3000"

	// Site identity
	SiteName    string // Rendered into the layout and page titles
	AnalyticsID string // Google Analytics measurement id; empty disables injection
}
