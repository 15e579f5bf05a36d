package results

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// memoryStore keeps records for the lifetime of the process. It is used when no
// database or Redis is configured.
type memoryStore struct {
	mu   sync.RWMutex
	byID map[string]*Record
}

func NewMemoryStore() Store {
	return &memoryStore{byID: make(map[string]*Record)}
}

func (m *memoryStore) Save(ctx context.Context, r *Record) error {
	if err := r.validate(); err != nil {
		return err
	}
	copy := *r
	m.mu.Lock()
	m.byID[strings.TrimSpace(r.ID)] = &copy
	m.mu.Unlock()
	return nil
}

func (m *memoryStore) Get(ctx context.Context, id string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.byID[strings.TrimSpace(id)]
	if !ok {
		return nil, ErrNotFound
	}
	copy := *r
	return &copy, nil
}

func (m *memoryStore) Recent(ctx context.Context, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	m.mu.RLock()
	items := make([]*Record, 0, len(m.byID))
	for _, r := range m.byID {
		copy := *r
		items = append(items, &copy)
	}
	m.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		if !items[i].EndedAt.Equal(items[j].EndedAt) {
			return items[i].EndedAt.After(items[j].EndedAt)
		}
		return items[i].ID > items[j].ID
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (m *memoryStore) Close() error { return nil }
