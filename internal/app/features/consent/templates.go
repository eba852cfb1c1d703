// internal/app/features/consent/templates.go
package consent

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "consent",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
