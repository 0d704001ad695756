package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	values    map[string]string
	expiresAt time.Time
}

// MemoryStore 进程内会话存储，写入时顺延有效期，过期条目由Sweep清理
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*memoryEntry
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
}

// live 返回未过期的条目，调用方需持有锁
func (s *MemoryStore) live(sid string) *memoryEntry {
	e, ok := s.entries[sid]
	if !ok {
		return nil
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, sid)
		return nil
	}
	return e
}

func (s *MemoryStore) Get(_ context.Context, sid, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.live(sid)
	if e == nil {
		return "", ErrNotFound
	}
	v, ok := e.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(_ context.Context, sid, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.live(sid)
	if e == nil {
		e = &memoryEntry{values: make(map[string]string)}
		s.entries[sid] = e
	}
	e.values[key] = value
	e.expiresAt = s.now().Add(s.ttl)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sid, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e := s.live(sid); e != nil {
		delete(e.values, key)
	}
	return nil
}

// Sweep 删除所有已过期的会话，返回删除数量
func (s *MemoryStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for sid, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, sid)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) Close() error { return nil }
