// Package normalize holds the field normalizers applied before records are
// written to the content repository.
package normalize

import "strings"

// Email lowercases and trims an email address. The repository matches by
// exact string, so every write and lookup goes through this.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace. Case is preserved.
func Name(s string) string {
	return strings.TrimSpace(s)
}
