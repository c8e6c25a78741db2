package repository

import (
	"context"
	"sync"

	"github.com/ponyo877/karaokesh/server/domain"
)

// MemoryRepository holds the collection in process memory only.
type MemoryRepository struct {
	mu       sync.Mutex
	sessions []domain.Session
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{sessions: []domain.Session{}}
}

func (r *MemoryRepository) LoadAll(ctx context.Context) ([]domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return domain.CloneSessions(r.sessions), nil
}

func (r *MemoryRepository) SaveAll(ctx context.Context, sessions []domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = domain.CloneSessions(sessions)
	return nil
}
