package ui

import (
	"csvgrip/internal/eventbus"
	"csvgrip/internal/view"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// viewBuiltMsg carries the result of a background filter rebuild
type viewBuiltMsg struct {
	gen  uint64
	view *view.View
	err  error
}
