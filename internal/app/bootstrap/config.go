// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for Fizikfinito.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: cms_base_url, session_name, etc.
//   - Environment variables: FIZIKFINITO_CMS_BASE_URL, FIZIKFINITO_SESSION_NAME, etc.
//   - Command-line flags: --cms_base_url, --session_name, etc.
var appConfigKeys = []config.AppKey{
	// Content repository
	{Name: "cms_base_url", Default: "http://localhost:8055", Desc: "Directus content repository base URL"},
	{Name: "cms_token", Default: "", Desc: "Directus static API token"},

	// Sessions
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "fizikfinito-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// CSRF
	{Name: "csrf_key", Default: "dev-only-32-byte-csrf-key-please", Desc: "32-byte CSRF signing key"},

	// Cookie consent
	{Name: "cookie_domain", Default: "", Desc: "Apex domain for the consent cookie (blank means current host)"},

	// Google OAuth
	{Name: "google_client_id", Default: "", Desc: "Google OAuth2 client ID"},
	{Name: "google_client_secret", Default: "", Desc: "Google OAuth2 client secret"},

	// Public origin for the OAuth callback
	{Name: "base_url", Default: "http://localhost:3000", Desc: "Public origin the OAuth callback is registered under"},

	// Site identity
	{Name: "site_name", Default: "Fizikfinito", Desc: "Site name rendered into the layout"},
	{Name: "analytics_id", Default: "", Desc: "Google Analytics measurement id (blank disables injection)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app. WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, FIZIKFINITO_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "FIZIKFINITO", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		CMSBaseURL: appValues.String("cms_base_url"),
		CMSToken:   appValues.String("cms_token"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		CSRFKey: appValues.String("csrf_key"),

		CookieDomain: appValues.String("cookie_domain"),

		GoogleClientID:     appValues.String("google_client_id"),
		GoogleClientSecret: appValues.String("google_client_secret"),

		BaseURL: appValues.String("base_url"),

		SiteName:    appValues.String("site_name"),
		AnalyticsID: appValues.String("analytics_id"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// This is the right place to enforce required fields or invariants that
// involve both the core and app configs.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	u, err := url.Parse(appCfg.CMSBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid cms_base_url %q", appCfg.CMSBaseURL)
	}

	if len(appCfg.CSRFKey) != 32 {
		return fmt.Errorf("csrf_key must be exactly 32 bytes, got %d", len(appCfg.CSRFKey))
	}

	if coreCfg.Env == "prod" {
		if appCfg.CMSToken == "" {
			return fmt.Errorf("cms_token is required in production")
		}
		if appCfg.GoogleClientID == "" || appCfg.GoogleClientSecret == "" {
			logger.Warn("Google OAuth is not configured; login will be unavailable")
		}
	}

	return nil
}
