// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
package event

// Tag is the stable identifier for an event handler.
// For a handler h, the tag is typically &h.
type Tag any

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}

// Queue delivers events to handlers.
type Queue interface {
	// Events returns the events pending for the handler
	// identified by t.
	Events(t Tag) []Event
}
