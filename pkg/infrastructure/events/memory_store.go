package events

import (
	"sync"
	"time"
)

// Store is an append-only in-memory event log, keyed by session.
// Versions count from 1 within each session stream.
type Store struct {
	mutex     sync.RWMutex
	streams   map[string][]Event
	allEvents []Event
}

// NewStore creates a new in-memory event store
func NewStore() *Store {
	return &Store{
		streams: make(map[string][]Event),
	}
}

// Append records an event for a session and returns it with its
// assigned version and timestamp.
func (s *Store) Append(sessionID, eventType string, data any) Event {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	event := Event{
		Type:      eventType,
		SessionID: sessionID,
		Data:      data,
		Time:      time.Now(),
		Version:   len(s.streams[sessionID]) + 1,
	}
	s.streams[sessionID] = append(s.streams[sessionID], event)
	s.allEvents = append(s.allEvents, event)
	return event
}

// Read returns all events for a session in append order
func (s *Store) Read(sessionID string) []Event {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	stream := s.streams[sessionID]
	out := make([]Event, len(stream))
	copy(out, stream)
	return out
}

// All returns every recorded event across sessions in append order
func (s *Store) All() []Event {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]Event, len(s.allEvents))
	copy(out, s.allEvents)
	return out
}
