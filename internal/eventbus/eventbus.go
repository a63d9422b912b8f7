package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"csvgrip/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventIndexProgress  = domain.EventIndexProgress
	EventIndexCompleted = domain.EventIndexCompleted
	EventFileChanged    = domain.EventFileChanged
	EventError          = domain.EventError
)

// Re-export domain event types
type IndexProgressEvent = domain.IndexProgressEvent
type IndexCompletedEvent = domain.IndexCompletedEvent
type FileChangedEvent = domain.FileChangedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscriber struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[EventType][]subscriber

	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	once      sync.Once
}

// New creates a new event bus and starts its dispatcher.
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscriber),
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers. It never blocks: if the
// queue is full the event is dropped, which is acceptable because index
// progress is resent on the next batch.
func (b *bus) Publish(event DomainEvent) {
	switch event.Type() {
	case EventIndexProgress:
		// too frequent to log
	default:
		log.Printf("eventbus: publishing %s", event.Type())
	}

	select {
	case b.eventChan <- event:
	default:
		log.Printf("eventbus: queue full, dropping %s", event.Type())
	}
}

// Subscribe registers a handler for an event type and returns an
// unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher after draining queued events.
func (b *bus) Close() {
	b.once.Do(func() { close(b.quit) })
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := make([]subscriber, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, s := range subs {
				func(h EventHandler) {
					defer func() {
						if r := recover(); r != nil {
							log.Printf("eventbus: handler panic for %s: %v\n%s", event.Type(), r, debug.Stack())
						}
					}()
					h(event)
				}(s.handler)
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}
