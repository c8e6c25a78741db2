package domain

import (
	"strings"
	"sync"
)

// RandomPool is the fallback catalog used when a session queue is empty.
// It is maintained outside the registry; sessions only read from it.
type RandomPool struct {
	mu  sync.RWMutex
	ids []string
}

func NewRandomPool(ids []string) *RandomPool {
	p := &RandomPool{}
	p.Replace(ids)
	return p
}

func (p *RandomPool) Replace(ids []string) {
	next := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			next = append(next, id)
		}
	}

	p.mu.Lock()
	p.ids = next
	p.mu.Unlock()
}

// Pick returns a uniformly chosen id; intn must return a value in [0, n).
func (p *RandomPool) Pick(intn func(n int) int) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if len(p.ids) == 0 {
		return "", false
	}
	return p.ids[intn(len(p.ids))], true
}

func (p *RandomPool) Contains(id string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, v := range p.ids {
		if v == id {
			return true
		}
	}
	return false
}

func (p *RandomPool) IDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	ids := make([]string, len(p.ids))
	copy(ids, p.ids)
	return ids
}
