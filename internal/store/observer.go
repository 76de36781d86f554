package store

import (
	"time"

	"github.com/google/uuid"
)

// EventType names the store operation an event reports on
type EventType string

const (
	EventCreateTable EventType = "create_table"
	EventInsert      EventType = "insert"
	EventUpdate      EventType = "update"
	EventDelete      EventType = "delete"
	EventView        EventType = "view"
	EventDump        EventType = "dump"
	EventLoad        EventType = "load"
)

// Event represents one completed store operation
type Event struct {
	Type      EventType   // Type of event
	OpID      string      // Operation ID for tracing
	Table     string      // Table the operation addressed, empty for dump/load
	Timestamp time.Time   // When the operation finished
	Err       error       // Error the operation returned, if any
	Data      interface{} // Operation-specific data (value count, indices, path)
}

// Observer interface for event subscribers
type Observer interface {
	OnEvent(event Event)
}

// AddObserver registers an observer to receive operation events
func (s *Store) AddObserver(observer Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}

// RemoveObserver unregisters an observer
func (s *Store) RemoveObserver(observer Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.observers {
		if o == observer {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers.
// Must be called without holding the lock.
func (s *Store) notify(event Event) {
	s.mu.RLock()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()

	if len(observers) == 0 {
		return
	}

	event.OpID = uuid.New().String()
	event.Timestamp = time.Now()
	for _, observer := range observers {
		observer.OnEvent(event)
	}
}
