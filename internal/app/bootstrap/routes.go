// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	authgooglefeature "github.com/fizikfinito/fizikfinito/internal/app/features/authgoogle"
	catalogfeature "github.com/fizikfinito/fizikfinito/internal/app/features/catalog"
	clickfeature "github.com/fizikfinito/fizikfinito/internal/app/features/click"
	consentfeature "github.com/fizikfinito/fizikfinito/internal/app/features/consent"
	cookiepolicyfeature "github.com/fizikfinito/fizikfinito/internal/app/features/cookiepolicy"
	errorsfeature "github.com/fizikfinito/fizikfinito/internal/app/features/errors"
	feedbackfeature "github.com/fizikfinito/fizikfinito/internal/app/features/feedback"
	healthfeature "github.com/fizikfinito/fizikfinito/internal/app/features/health"
	loginfeature "github.com/fizikfinito/fizikfinito/internal/app/features/login"
	logoutfeature "github.com/fizikfinito/fizikfinito/internal/app/features/logout"
	profilefeature "github.com/fizikfinito/fizikfinito/internal/app/features/profile"
	catalogstore "github.com/fizikfinito/fizikfinito/internal/app/store/catalog"
	clickstore "github.com/fizikfinito/fizikfinito/internal/app/store/clicks"
	suggestionstore "github.com/fizikfinito/fizikfinito/internal/app/store/suggestions"
	userstore "github.com/fizikfinito/fizikfinito/internal/app/store/users"
	"github.com/fizikfinito/fizikfinito/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend connections, and any
// Startup hooks have completed. It creates the router, mounts feature
// routers, and applies the session and CSRF middleware.
//
// The click tracking endpoint sits outside the CSRF wrapper: it is a
// plain JSON POST from page script, not a form.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)

	// Stores over the content repository.
	catalogs := catalogstore.New(deps.CMS)
	users := userstore.New(deps.CMS)
	clicks := clickstore.New(deps.CMS)
	suggestions := suggestionstore.New(deps.CMS)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	errorsHandler := errorsfeature.NewHandler()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.CMS, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Click tracking: JSON POST from page script, no CSRF token.
	clickHandler := clickfeature.NewHandler(clicks, secure, logger)
	r.Mount("/click", clickfeature.Routes(clickHandler))

	// Everything that renders forms goes through CSRF protection.
	csrfMw := csrf.Protect([]byte(appCfg.CSRFKey),
		csrf.Secure(secure),
		csrf.Path("/"),
	)

	r.Group(func(r chi.Router) {
		r.Use(csrfMw)

		loginHandler := loginfeature.NewHandler(logger)
		r.Mount("/login", loginfeature.Routes(loginHandler))

		// The Google endpoints sit at the root because the callback URL
		// registered in the Google console is /callback, not nested.
		googleHandler := authgooglefeature.NewHandler(
			users, sessionMgr,
			appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL,
			logger,
		)
		r.Get("/google", googleHandler.ServeStart)
		r.Get("/callback", googleHandler.ServeCallback)

		logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
		r.Mount("/logout", logoutfeature.Routes(logoutHandler))

		consentHandler := consentfeature.NewHandler(users, sessionMgr, errLog, logger)
		r.With(sessionMgr.RequireSignedIn).Mount("/kvkk", consentfeature.Routes(consentHandler))

		profileHandler := profilefeature.NewHandler(users, errLog, logger)
		r.With(sessionMgr.RequireConsent).Mount("/profile", profilefeature.Routes(profileHandler))

		feedbackHandler := feedbackfeature.NewHandler(suggestions, users, errLog, logger)
		r.Mount("/oneri", feedbackfeature.Routes(feedbackHandler))

		cookieHandler := cookiepolicyfeature.NewHandler(appCfg.CookieDomain, logger)
		r.Mount("/cookie-politikalari", cookiepolicyfeature.PolicyRoutes(cookieHandler))
		r.Mount("/cookie-consent", cookiepolicyfeature.ConsentRoutes(cookieHandler))

		// The experiment browser owns the remaining paths, including "/".
		// Unmatched paths inside its subtree render the 404 page.
		catalogHandler := catalogfeature.NewHandler(catalogs, logger, errLog)
		catalogRouter := catalogfeature.Routes(catalogHandler)
		catalogRouter.NotFound(errorsHandler.NotFound)
		r.Mount("/", catalogRouter)
	})

	return r, nil
}
