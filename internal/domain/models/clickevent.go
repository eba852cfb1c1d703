// internal/domain/models/clickevent.go
package models

// ClickEvent is an append-only record in the link_clicks collection.
// Exactly one of UserID / VisitorID is set: a signed-in user is attributed
// by record id, an anonymous visitor by the UUID minted into the visitorId
// cookie. ClickedAt is RFC 3339.
type ClickEvent struct {
	Link      string `json:"link"`
	ClickedAt string `json:"clicked_at"`
	UserID    string `json:"user,omitempty"`
	VisitorID string `json:"visitor_id,omitempty"`
}
