// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/fizikfinito/fizikfinito/internal/app/store/cms"
)

// ConnectDB builds the content repository client and verifies the
// repository is reachable. A failed ping aborts startup: every page
// depends on the catalog collections.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	client := cms.New(appCfg.CMSBaseURL, appCfg.CMSToken, logger)

	if err := client.Ping(ctx); err != nil {
		logger.Error("content repository unreachable",
			zap.String("base_url", appCfg.CMSBaseURL),
			zap.Error(err))
		return DBDeps{}, err
	}

	logger.Info("connected to content repository", zap.String("base_url", appCfg.CMSBaseURL))
	return DBDeps{CMS: client}, nil
}

// EnsureSchema is a no-op: collections and fields live in the content
// repository and are managed through its admin UI.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return nil
}
