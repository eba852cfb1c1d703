package clickstore

import (
	"context"
	"fmt"
	"time"

	"github.com/fizikfinito/fizikfinito/internal/app/store/cms"
	"github.com/fizikfinito/fizikfinito/internal/domain/models"
)

const collection = "link_clicks"

// Store appends click events. Events are never read back by the site.
type Store struct {
	cms *cms.Client
	now func() time.Time
}

func New(c *cms.Client) *Store {
	return &Store{cms: c, now: time.Now}
}

// Record writes one click event. Exactly one of userID / visitorID must be
// non-empty; a signed-in user wins over the visitor cookie.
func (s *Store) Record(ctx context.Context, link, userID, visitorID string) error {
	ev := models.ClickEvent{
		Link:      link,
		ClickedAt: s.now().UTC().Format(time.RFC3339),
	}
	if userID != "" {
		ev.UserID = userID
	} else {
		ev.VisitorID = visitorID
	}

	if err := s.cms.Create(ctx, collection, ev, nil); err != nil {
		return fmt.Errorf("record click: %w", err)
	}
	return nil
}
