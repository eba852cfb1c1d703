// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/fizikfinito/fizikfinito/internal/app/store/cms"
)

// DBDeps holds back-end dependencies for the app. The only shared
// backend is the content repository; everything else is cookie-scoped.
type DBDeps struct {
	CMS *cms.Client
}
