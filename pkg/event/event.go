// Package event handles triggering of operations without direct dependency
// between managers.
package event

import (
	"context"
	"sync"

	"fitnote/local-app/pkg/log"
)

// EventType represents the type of event
type EventType int

const (
	UserRegistered EventType = iota
	UserLoggedIn
	UserLoggedOut
	UserUpdated
)

// Event represents an event with its type and associated data
type Event struct {
	Type EventType
	Data any
}

// EventHandler is a function type for event handlers
type EventHandler func(Event)

// EventManager manages event subscriptions and publications. Dispatch is
// synchronous: the application is a single sequential actor and subscribers
// must finish before the triggering operation reports its result.
type EventManager struct {
	subscribers map[EventType][]EventHandler
	mu          sync.RWMutex
	logger      *log.Logger
}

// NewEventManager creates a new EventManager instance
func NewEventManager(logger *log.Logger) *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]EventHandler),
		logger:      logger,
	}
}

// Subscribe adds a new event handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) {
	em.mu.Lock()
	defer em.mu.Unlock()
	em.subscribers[eventType] = append(em.subscribers[eventType], handler)
}

// Publish sends an event to all subscribed handlers, in subscription order.
func (em *EventManager) Publish(event Event) {
	em.mu.RLock()
	handlers := em.subscribers[event.Type]
	em.mu.RUnlock()

	for _, handler := range handlers {
		func(h EventHandler) {
			defer func() {
				if r := recover(); r != nil {
					em.logger.Error(context.Background(), "Panic in event handler", log.Fields{
						"eventType": event.Type,
						"panic":     r,
					})
				}
			}()
			h(event)
		}(handler)
	}
}
