// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements the virtual joystick pad gesture
recognizer.

A Pad accepts low level pointer Events from an event Queue and
detects higher level actions: taps, double taps and directional
swipes. It also projects the live pointer displacement onto a
clamped visual cursor offset for the widget layer to draw.
*/
package gesture

import (
	"math"
	"time"

	"github.com/breakthestatic/ha-swipe-pad/f32"
	"github.com/breakthestatic/ha-swipe-pad/io/event"
	"github.com/breakthestatic/ha-swipe-pad/io/pointer"
	"github.com/breakthestatic/ha-swipe-pad/unit"
)

// Pad detects joystick gestures in the form of PadEvents.
//
// A pad session runs from a press to its release. The release
// classifies the raw displacement from the press origin; while the
// session is live, the displacement is clamped to the pad bounds
// and exposed through Offset for visual feedback only.
type Pad struct {
	// SwipeThreshold is the minimum displacement of a directional
	// swipe. Zero means DefaultSwipeThreshold.
	SwipeThreshold unit.Dp
	// TapThreshold is the maximum displacement of a tap. Zero means
	// DefaultTapThreshold.
	TapThreshold unit.Dp
	// TapTimeout is the window within which two taps merge into a
	// double tap, and the time a lone tap is deferred before it
	// fires. Zero means DefaultTapTimeout.
	TapTimeout time.Duration

	// state tracks the session state.
	state padState
	// origin is the position of the press that began the session.
	origin f32.Point
	// mouseActive tracks whether a mouse button is held. Mouse
	// moves and releases arrive from window-level listeners and
	// must be ignored outside of a drag.
	mouseActive bool

	// lastTap is the timestamp of the most recent qualifying tap.
	// tapped reports whether lastTap is valid.
	lastTap time.Duration
	tapped  bool
	pending *pendingTap

	offset  f32.Point
	instant bool
}

type padState uint8

// pendingTap is the deferred tap scheduled at release, giving a
// second tap the chance to arrive and upgrade to a double tap.
type pendingTap struct {
	deadline time.Duration
	pos      f32.Point
	src      pointer.Source
}

// PadEvent represents a detected gesture.
type PadEvent struct {
	Gesture Gesture
	// Position is where the pointer was released. For a deferred
	// tap it is the release position of the tap that scheduled it.
	Position f32.Point
	Source   pointer.Source
}

// Gesture identifies the detected gesture.
type Gesture uint8

const (
	// Tap is a release within TapThreshold of its press.
	Tap Gesture = iota
	// DoubleTap is a second tap within TapTimeout of the first.
	DoubleTap
	// SwipeUp, SwipeDown, SwipeLeft and SwipeRight are releases
	// whose dominant axis displacement exceeds SwipeThreshold.
	SwipeUp
	SwipeDown
	SwipeLeft
	SwipeRight
)

const (
	// stateIdle is the default pad state, with no session live.
	stateIdle padState = iota
	// stateActive is the state between a press and its release.
	stateActive
)

const (
	// DefaultSwipeThreshold is the displacement a swipe must cover.
	DefaultSwipeThreshold = unit.Dp(50)
	// DefaultTapThreshold is the displacement below which a
	// release still counts as a tap.
	DefaultTapThreshold = unit.Dp(5)
	// DefaultTapTimeout merges two taps into a double tap.
	DefaultTapTimeout = 200 * time.Millisecond
)

// Bounds are the pad and knob sizes used to clamp the cursor
// offset. Both are in pixels.
type Bounds struct {
	Container f32.Point
	Knob      f32.Point
}

// Events processes pointer events from q and returns the gestures
// detected. The bounds b clamp the visual cursor offset per axis;
// classification always uses the raw unclamped displacement, so a
// pointer dragged against the pad edge keeps growing the measured
// gesture.
func (p *Pad) Events(m unit.Metric, q event.Queue, b Bounds) []PadEvent {
	var events []PadEvent
	for _, evt := range q.Events(p) {
		e, ok := evt.(pointer.Event)
		if !ok {
			continue
		}
		if ev, ok := p.Tick(e.Time); ok {
			events = append(events, ev)
		}
		switch e.Kind {
		case pointer.Press:
			p.start(e)
		case pointer.Move:
			p.move(e, b)
		case pointer.Release:
			if ev, ok := p.end(m, e); ok {
				events = append(events, ev)
			}
		case pointer.Cancel:
			p.Stop()
		}
	}
	return events
}

// Tick returns the deferred tap if now has reached its deadline.
// Callers that want a lone tap delivered without waiting for the
// next pointer event must call Tick at the time reported by
// Deadline.
func (p *Pad) Tick(now time.Duration) (PadEvent, bool) {
	t := p.pending
	if t == nil || now < t.deadline {
		return PadEvent{}, false
	}
	p.setPending(nil)
	return PadEvent{Gesture: Tap, Position: t.pos, Source: t.src}, true
}

// Deadline reports when the deferred tap fires, if one is pending.
func (p *Pad) Deadline() (time.Duration, bool) {
	if p.pending == nil {
		return 0, false
	}
	return p.pending.deadline, true
}

// Stop cancels the session in progress, if any, and the deferred
// tap. The cursor recenters without easing. Call Stop on teardown
// so no deferred tap fires against a destroyed target.
func (p *Pad) Stop() {
	p.state = stateIdle
	p.mouseActive = false
	p.setPending(nil)
	p.offset = f32.Point{}
	p.instant = false
}

// Offset is the clamped visual cursor offset from the pad center.
func (p *Pad) Offset() f32.Point {
	return p.offset
}

// Smooth reports whether the cursor should ease back to its
// position. It is false while a session is live so the cursor
// tracks the pointer without lag, and true again on release for
// the return to center.
func (p *Pad) Smooth() bool {
	return !p.instant
}

// Pressed reports whether a session is live.
func (p *Pad) Pressed() bool {
	return p.state == stateActive
}

// start begins a session at the event position. A session already
// in progress is silently replaced; last start wins.
func (p *Pad) start(e pointer.Event) {
	if e.Source == pointer.Mouse && !e.Buttons.Contain(pointer.ButtonPrimary) {
		return
	}
	p.state = stateActive
	p.origin = e.Position
	p.mouseActive = e.Source == pointer.Mouse
	p.instant = true
}

// move projects the live displacement onto the clamped cursor
// offset. Mouse moves outside of a drag come from the window-level
// listener and are ignored.
func (p *Pad) move(e pointer.Event, b Bounds) {
	if p.state != stateActive {
		return
	}
	if e.Source == pointer.Mouse && !p.mouseActive {
		return
	}
	p.offset = clampOffset(e.Position.Sub(p.origin), b)
}

// end closes the session and classifies its displacement. The
// mouseActive guard runs before the flag is cleared so a stray
// window-level mouse-up without a tracked press is ignored, the
// same way stray moves are.
func (p *Pad) end(m unit.Metric, e pointer.Event) (PadEvent, bool) {
	if e.Source == pointer.Mouse && !p.mouseActive {
		return PadEvent{}, false
	}
	if p.state != stateActive {
		return PadEvent{}, false
	}
	p.state = stateIdle
	p.mouseActive = false
	// The cursor eases back to center for every outcome,
	// dead zone included.
	p.offset = f32.Point{}
	p.instant = false

	raw := e.Position.Sub(p.origin)
	dx, dy := abs(raw.X), abs(raw.Y)
	tap := m.DpScale(p.tapThreshold())
	swipe := m.DpScale(p.swipeThreshold())

	switch {
	case dx < tap && dy < tap:
		double := p.tapped && e.Time-p.lastTap < p.tapTimeout()
		p.setPending(nil)
		// The window always restarts at this tap, double or not.
		p.lastTap = e.Time
		p.tapped = true
		if double {
			return PadEvent{Gesture: DoubleTap, Position: e.Position, Source: e.Source}, true
		}
		p.setPending(&pendingTap{
			deadline: e.Time + p.tapTimeout(),
			pos:      e.Position,
			src:      e.Source,
		})
	case dx > dy && dx > swipe:
		g := SwipeLeft
		if raw.X > 0 {
			g = SwipeRight
		}
		return PadEvent{Gesture: g, Position: e.Position, Source: e.Source}, true
	case dy > dx && dy > swipe:
		g := SwipeUp
		if raw.Y > 0 {
			g = SwipeDown
		}
		return PadEvent{Gesture: g, Position: e.Position, Source: e.Source}, true
	}
	// Dead zone: past the tap threshold but no dominant axis over
	// the swipe threshold.
	return PadEvent{}, false
}

// setPending replaces the deferred tap handle. At most one deferred
// tap is outstanding; setting a new one cancels the previous.
func (p *Pad) setPending(t *pendingTap) {
	p.pending = t
}

func (p *Pad) swipeThreshold() unit.Dp {
	if p.SwipeThreshold == 0 {
		return DefaultSwipeThreshold
	}
	return p.SwipeThreshold
}

func (p *Pad) tapThreshold() unit.Dp {
	if p.TapThreshold == 0 {
		return DefaultTapThreshold
	}
	return p.TapThreshold
}

func (p *Pad) tapTimeout() time.Duration {
	if p.TapTimeout == 0 {
		return DefaultTapTimeout
	}
	return p.TapTimeout
}

// clampOffset clamps the displacement to the free space between
// the knob and the container edge, per axis. A knob at least as
// large as its container collapses the offset to zero.
func clampOffset(d f32.Point, b Bounds) f32.Point {
	return f32.Point{
		X: clampAxis(d.X, (b.Container.X-b.Knob.X)/2),
		Y: clampAxis(d.Y, (b.Container.Y-b.Knob.Y)/2),
	}
}

func clampAxis(v, limit float32) float32 {
	if limit < 0 {
		limit = 0
	}
	if v < -limit {
		return -limit
	}
	if v > limit {
		return limit
	}
	return v
}

func abs(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

func (g Gesture) String() string {
	switch g {
	case Tap:
		return "tap"
	case DoubleTap:
		return "double_tap"
	case SwipeUp:
		return "up"
	case SwipeDown:
		return "down"
	case SwipeLeft:
		return "left"
	case SwipeRight:
		return "right"
	default:
		panic("invalid Gesture")
	}
}
