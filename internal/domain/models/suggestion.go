// internal/domain/models/suggestion.go
package models

// Suggestion is a record written to the oneri collection by the feedback
// form. Name and Email are only attached when the sender filled them in or
// was signed in.
type Suggestion struct {
	ID    ID     `json:"id,omitempty"`
	Role  string `json:"role"`
	Mesaj string `json:"mesaj"`
	Isim  string `json:"isim,omitempty"`
	Email string `json:"email,omitempty"`
}
