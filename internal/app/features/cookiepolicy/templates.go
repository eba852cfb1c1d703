// internal/app/features/cookiepolicy/templates.go
package cookiepolicy

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "cookiepolicy",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
