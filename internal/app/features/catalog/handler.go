// internal/app/features/catalog/handler.go
package catalog

import (
	"net/http"
	"net/url"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	errorsfeature "github.com/fizikfinito/fizikfinito/internal/app/features/errors"
	catalogstore "github.com/fizikfinito/fizikfinito/internal/app/store/catalog"
	"github.com/fizikfinito/fizikfinito/internal/app/system/timeouts"
	domcatalog "github.com/fizikfinito/fizikfinito/internal/domain/catalog"
)

// Handler serves the experiment browser pages.
type Handler struct {
	Catalog *catalogstore.Store
	Log     *zap.Logger
	ErrLog  *errorsfeature.ErrorLogger
}

func NewHandler(store *catalogstore.Store, logger *zap.Logger, errLog *errorsfeature.ErrorLogger) *Handler {
	return &Handler{
		Catalog: store,
		Log:     logger,
		ErrLog:  errLog,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / and /{category}[/{subcategory}[/{topic}/{experiment}]] – browser      |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeBrowse(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "catalog load")
	defer cancel()

	data, err := h.Catalog.Load(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "catalog load failed", err,
			"İçerik şu anda yüklenemiyor. Lütfen daha sonra tekrar deneyin.", "/")
		return
	}

	state := domcatalog.Resolve(data, domcatalog.Segments(r.URL.Path))
	state = applyQuery(state, r.URL.Query())

	vm := buildPage(r, data, state)
	templates.Render(w, r, "catalog_browse", vm)
}

// applyQuery folds the display flags carried in the query string into the
// path-resolved state. The path holds the tree cursor; tab and expanded
// ride along as query parameters so toggling them never changes the
// canonical path.
func applyQuery(s domcatalog.State, q url.Values) domcatalog.State {
	if q.Get("tab") == string(domcatalog.ContentMaterials) {
		s.ContentType = domcatalog.ContentMaterials
	}
	if q.Get("expanded") == "1" {
		s.Expanded = true
	}
	return s
}

// stateURL renders a state back into the href that reproduces it: the
// canonical path plus tab/expanded query parameters when they differ from
// the defaults.
func stateURL(s domcatalog.State) string {
	p := domcatalog.Path(s)
	q := url.Values{}
	if s.ContentType == domcatalog.ContentMaterials {
		q.Set("tab", string(domcatalog.ContentMaterials))
	}
	if s.Expanded {
		q.Set("expanded", "1")
	}
	if len(q) == 0 {
		return p
	}
	return p + "?" + q.Encode()
}
