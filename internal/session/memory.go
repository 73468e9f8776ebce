package session

import "sync"

// MemoryStore keeps the session in process memory. It is the default
// store and the one tests use; nothing survives a restart, which maps
// to the "app restart with missing token" path back to anonymous.
type MemoryStore struct {
	mu      sync.Mutex
	current Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get() (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, nil
}

func (s *MemoryStore) Set(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = sess
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Session{}
	return nil
}

func (s *MemoryStore) Close() error { return nil }
