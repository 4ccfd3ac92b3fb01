// Package router owns the host side of "current identity": the typed value a
// deep link, bookmark, or the navigator's own debounced sync writes to. The
// navigator core never parses references; that happens here.
package router

import (
	"sync"

	"versemate/internal/domain"
	"versemate/internal/eventbus"
)

// historyLimit caps the back stack.
const historyLimit = 100

// Service holds the current identity for one navigator instance and a back
// history. Every change is published as an IdentityChangedEvent; the UI
// forwards those into the sync bridge's inbound path, which is the loop the
// bridge's suppression rules protect.
type Service struct {
	mu      sync.Mutex
	name    string // navigator instance: "bible" or "topics"
	bus     eventbus.EventBus
	current domain.Identity
	history []domain.Identity
}

// NewService creates a router for one navigator instance.
func NewService(name string, bus eventbus.EventBus) *Service {
	return &Service{name: name, bus: bus}
}

// CurrentIdentity returns the host-owned current identity.
func (s *Service) CurrentIdentity() domain.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SetCurrentIdentity updates the current identity and publishes the change.
// Both the debounced navigator sync and external sources (goto box, bookmark
// jump, deep link) land here; the bridge sorts out which is which.
func (s *Service) SetCurrentIdentity(id domain.Identity) {
	s.mu.Lock()
	if id == s.current {
		s.mu.Unlock()
		return
	}
	if !s.current.Zero() {
		s.history = append(s.history, s.current)
		if len(s.history) > historyLimit {
			s.history = s.history[len(s.history)-historyLimit:]
		}
	}
	s.current = id
	bus := s.bus
	name := s.name
	s.mu.Unlock()

	if bus != nil {
		bus.Publish(domain.IdentityChangedEvent{Navigator: name, Identity: id})
	}
}

// Back pops the history stack and makes the popped identity current,
// publishing the change. Returns false when there is nothing to go back to.
func (s *Service) Back() (domain.Identity, bool) {
	s.mu.Lock()
	if len(s.history) == 0 {
		s.mu.Unlock()
		return domain.Identity{}, false
	}
	id := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.current = id
	bus := s.bus
	name := s.name
	s.mu.Unlock()

	if bus != nil {
		bus.Publish(domain.IdentityChangedEvent{Navigator: name, Identity: id})
	}
	return id, true
}

// Depth returns the history depth, for the status bar.
func (s *Service) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}
