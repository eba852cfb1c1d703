// internal/testutil/templates.go
package testutil

import (
	"sync"
	"testing"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/fizikfinito/fizikfinito/internal/app/resources"
)

var bootTemplatesOnce sync.Once

// InitTemplates boots the template engine over every set the imported
// feature packages registered, so handler tests render real pages. Safe
// to call from any number of tests.
func InitTemplates(t *testing.T) {
	t.Helper()
	bootTemplatesOnce.Do(func() {
		resources.LoadSharedTemplates()
		eng := templates.New(false)
		if err := eng.Boot(zap.NewNop()); err != nil {
			t.Fatalf("boot templates: %v", err)
		}
		templates.UseEngine(eng, zap.NewNop())
	})
}
