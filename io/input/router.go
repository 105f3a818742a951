// SPDX-License-Identifier: Unlicense OR MIT

/*
Package input routes pointer events from platform input sources
to gesture handlers.

There is no hit testing: the pad is the only interactive area, and
its mouse path deliberately listens at the window level. A Source
queues events for a handler tag, and the handler drains them through
the Router's event.Queue implementation, typically once per frame.
*/
package input

import (
	"github.com/breakthestatic/ha-swipe-pad/io/event"
)

// Router collects events from input sources and delivers them
// to handlers. The zero value is ready to use.
type Router struct {
	queues map[event.Tag][]event.Event
}

// Queue appends events to the queue of the handler identified
// by tag.
func (r *Router) Queue(tag event.Tag, events ...event.Event) {
	if r.queues == nil {
		r.queues = make(map[event.Tag][]event.Event)
	}
	r.queues[tag] = append(r.queues[tag], events...)
}

// Events returns the events pending for the handler and clears
// its queue.
func (r *Router) Events(tag event.Tag) []event.Event {
	events := r.queues[tag]
	delete(r.queues, tag)
	return events
}
