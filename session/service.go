package session

import (
	"sync"
)

// Service tracks live sessions in creation order.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	order    []string
}

func NewService() *Service {
	return &Service{
		sessions: make(map[string]*Session),
		order:    make([]string, 0),
	}
}

func (s *Service) Add(session *Session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[session.ID]; exists {
		return false
	}

	s.sessions[session.ID] = session
	s.order = append(s.order, session.ID)
	return true
}

func (s *Service) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	for i, sid := range s.order {
		if sid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Service) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, exists := s.sessions[id]
	return session, exists
}

func (s *Service) Snapshot() []*Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Session, 0, len(s.order))
	for _, id := range s.order {
		if session, exists := s.sessions[id]; exists {
			result = append(result, session)
		}
	}
	return result
}

func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StopAll stops and forgets every session.
func (s *Service) StopAll() {
	for _, session := range s.Snapshot() {
		session.Stop()
		s.Remove(session.ID)
	}
}
