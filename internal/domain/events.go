package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventIndexProgress  EventType = "IndexProgress"
	EventIndexCompleted EventType = "IndexCompleted"
	EventFileChanged    EventType = "FileChanged"
	EventError          EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// IndexProgressEvent is emitted as batches of rows become visible to readers.
type IndexProgressEvent struct {
	Generation uint64
	Rows       int
}

func (e IndexProgressEvent) Type() EventType { return EventIndexProgress }

// IndexCompletedEvent is emitted when an indexing pass finishes for any reason.
type IndexCompletedEvent struct {
	Progress Progress
}

func (e IndexCompletedEvent) Type() EventType { return EventIndexCompleted }

// FileChangedEvent is emitted when the source file changes on disk.
type FileChangedEvent struct {
	Path string
}

func (e FileChangedEvent) Type() EventType { return EventFileChanged }

// ErrorEvent is emitted when a non-fatal error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
