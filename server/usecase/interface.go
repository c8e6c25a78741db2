package usecase

import (
	"context"

	"github.com/ponyo877/karaokesh/server/domain"
)

// Repository persists the whole session collection at once.
type Repository interface {
	// LoadAll returns the stored collection. Unreadable or missing stores
	// yield an empty collection rather than an error.
	LoadAll(ctx context.Context) ([]domain.Session, error)
	// SaveAll atomically replaces the stored collection.
	SaveAll(ctx context.Context, sessions []domain.Session) error
}
