// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"time"

	"github.com/breakthestatic/ha-swipe-pad/f32"
	"github.com/breakthestatic/ha-swipe-pad/io/event"
	"github.com/breakthestatic/ha-swipe-pad/io/pointer"
)

// A Source adapts one platform input stream into pointer events.
// Implementations deliver a strict start, zero or more moves, end
// sequence per pointer session.
type Source interface {
	Start(pos f32.Point, t time.Duration)
	Move(pos f32.Point, t time.Duration)
	End(pos f32.Point, t time.Duration)
}

// TouchSource forwards touch sequences from an element-level
// touch listener. Touch sessions are delimited by their own start
// and end events, so events are forwarded as-is.
type TouchSource struct {
	Router *Router
	Tag    event.Tag
}

// MouseSource forwards events from window-level mouse listeners.
// It tracks the primary button so handlers can tell moves belonging
// to a drag apart from stray moves delivered while no button is
// held.
type MouseSource struct {
	Router *Router
	Tag    event.Tag

	buttons pointer.Buttons
}

// Start reports a touch begin at pos.
func (s *TouchSource) Start(pos f32.Point, t time.Duration) {
	s.queue(pointer.Press, pos, t)
}

// Move reports a touch move at pos.
func (s *TouchSource) Move(pos f32.Point, t time.Duration) {
	s.queue(pointer.Move, pos, t)
}

// End reports a touch end at pos.
func (s *TouchSource) End(pos f32.Point, t time.Duration) {
	s.queue(pointer.Release, pos, t)
}

// Cancel reports that the platform interrupted the touch sequence.
func (s *TouchSource) Cancel(t time.Duration) {
	s.queue(pointer.Cancel, f32.Point{}, t)
}

func (s *TouchSource) queue(kind pointer.Kind, pos f32.Point, t time.Duration) {
	s.Router.Queue(s.Tag, pointer.Event{
		Kind:     kind,
		Source:   pointer.Touch,
		Time:     t,
		Position: pos,
	})
}

// Start reports a primary button press at pos.
func (s *MouseSource) Start(pos f32.Point, t time.Duration) {
	s.buttons |= pointer.ButtonPrimary
	s.queue(pointer.Press, pos, t)
}

// Move reports a mouse move at pos. Window-level listeners deliver
// moves whether or not a button is held; the held set rides along
// on the event for handlers that care.
func (s *MouseSource) Move(pos f32.Point, t time.Duration) {
	s.queue(pointer.Move, pos, t)
}

// End reports a primary button release at pos. The event carries
// the buttons held up to the release.
func (s *MouseSource) End(pos f32.Point, t time.Duration) {
	s.queue(pointer.Release, pos, t)
	s.buttons &^= pointer.ButtonPrimary
}

func (s *MouseSource) queue(kind pointer.Kind, pos f32.Point, t time.Duration) {
	s.Router.Queue(s.Tag, pointer.Event{
		Kind:     kind,
		Source:   pointer.Mouse,
		Time:     t,
		Buttons:  s.buttons,
		Position: pos,
	})
}
