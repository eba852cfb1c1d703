package suggestionstore

import (
	"context"
	"fmt"

	"github.com/fizikfinito/fizikfinito/internal/app/store/cms"
	"github.com/fizikfinito/fizikfinito/internal/domain/models"
)

const collection = "oneri"

// Store writes feedback-form submissions.
type Store struct {
	cms *cms.Client
}

func New(c *cms.Client) *Store {
	return &Store{cms: c}
}

// Create appends one suggestion. The message is expected to be sanitized
// and validated by the handler before it gets here.
func (s *Store) Create(ctx context.Context, sug models.Suggestion) error {
	if err := s.cms.Create(ctx, collection, sug, nil); err != nil {
		return fmt.Errorf("create suggestion: %w", err)
	}
	return nil
}
