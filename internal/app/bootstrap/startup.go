// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/fizikfinito/fizikfinito/internal/app/resources"
	"github.com/fizikfinito/fizikfinito/internal/app/system/timeouts"
	"github.com/fizikfinito/fizikfinito/internal/app/system/viewdata"
)

// Startup runs one-time application initialization after backends are
// connected, but before the HTTP handler is built. It is the place to
// load shared resources (like templates) and app-wide settings that
// depend on config.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	viewdata.Init(appCfg.SiteName, appCfg.AnalyticsID)
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeouts configured from environment", zap.Int("overrides", n))
	}
	return nil
}
