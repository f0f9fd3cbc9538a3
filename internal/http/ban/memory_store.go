package ban

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count   int
	expires time.Time
}

// MemoryStore keeps strikes and bans in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	strikes map[string]*window
	bans    map[string]time.Time
	banLog  []BanLogEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		strikes: make(map[string]*window),
		bans:    make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *MemoryStore) IsBanned(_ context.Context, target string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.bans[target]
	if !ok {
		return false, nil
	}
	if !s.now().Before(until) {
		delete(s.bans, target)
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) Strike(_ context.Context, target string, d time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictExpired(now)
	w, ok := s.strikes[target]
	if !ok || !now.Before(w.expires) {
		w = &window{expires: now.Add(d)}
		s.strikes[target] = w
	}
	w.count++
	return w.count, nil
}

// evictExpired drops lapsed strike windows and bans. Callers hold s.mu.
func (s *MemoryStore) evictExpired(now time.Time) {
	for target, w := range s.strikes {
		if !now.Before(w.expires) {
			delete(s.strikes, target)
		}
	}
	for target, until := range s.bans {
		if !now.Before(until) {
			delete(s.bans, target)
		}
	}
}

func (s *MemoryStore) Ban(_ context.Context, target string, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bans[target] = s.now().Add(d)
	delete(s.strikes, target)
	return nil
}

func (s *MemoryStore) AppendLog(_ context.Context, entry BanLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.banLog = append(s.banLog, entry)
	return nil
}

func (s *MemoryStore) DrainLog(_ context.Context) ([]BanLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.banLog
	s.banLog = nil
	return entries, nil
}
