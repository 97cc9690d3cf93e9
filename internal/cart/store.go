package cart

import "sync"

// Store persists cart lines keyed by identity. The original client kept this
// in browser-local storage; here it is an explicit dependency handed to the
// session so identity switches are deliberate calls instead of observers.
type Store interface {
	Load(key string) ([]Line, bool)
	Save(key string, lines []Line)
	Delete(key string)
}

// MemoryStore is the in-process Store used by the demo client session.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string][]Line
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]Line)}
}

func (s *MemoryStore) Load(key string) ([]Line, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines, ok := s.carts[key]
	if !ok {
		return nil, false
	}
	out := make([]Line, len(lines))
	copy(out, lines)
	return out, true
}

func (s *MemoryStore) Save(key string, lines []Line) {
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := make([]Line, len(lines))
	copy(saved, lines)
	s.carts[key] = saved
}

func (s *MemoryStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, key)
}
