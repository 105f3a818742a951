// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the configured swipe pad on top of
// the gesture recognizer.
package widget

import (
	"time"

	"github.com/breakthestatic/ha-swipe-pad/f32"
	"github.com/breakthestatic/ha-swipe-pad/gesture"
	"github.com/breakthestatic/ha-swipe-pad/io/event"
	"github.com/breakthestatic/ha-swipe-pad/unit"
)

// Config is the resolved pad configuration: one optional opaque
// action descriptor per gesture, plus the classifier thresholds.
// Descriptors pass through to ActionEvents unchanged; a nil
// descriptor silences its gesture. Zero thresholds mean the
// gesture package defaults.
type Config struct {
	Tap       any
	DoubleTap any
	Up        any
	Down      any
	Left      any
	Right     any

	SwipeThreshold unit.Dp
	TapThreshold   unit.Dp
	TapTimeout     time.Duration
}

// action returns the descriptor configured for g, or nil.
func (c *Config) action(g gesture.Gesture) any {
	switch g {
	case gesture.Tap:
		return c.Tap
	case gesture.DoubleTap:
		return c.DoubleTap
	case gesture.SwipeUp:
		return c.Up
	case gesture.SwipeDown:
		return c.Down
	case gesture.SwipeLeft:
		return c.Left
	case gesture.SwipeRight:
		return c.Right
	default:
		return nil
	}
}

// ActionEvent is the outbound event for a classified gesture with
// a configured action. Action is the opaque descriptor from the
// configuration; the pad does not interpret it. The gesture's
// String is its configuration name (tap, double_tap, up, ...).
type ActionEvent struct {
	Gesture gesture.Gesture
	Action  any
}

// Joystick is a virtual joystick pad bound to a configuration.
// Pointer events go in through an input source queueing for Tag;
// ActionEvents come out of Update and Tick.
type Joystick struct {
	cfg Config
	pad gesture.Pad

	container f32.Point
	knob      f32.Point
}

// NewJoystick returns a pad bound to cfg.
func NewJoystick(cfg Config) *Joystick {
	j := &Joystick{cfg: cfg}
	j.pad.SwipeThreshold = cfg.SwipeThreshold
	j.pad.TapThreshold = cfg.TapThreshold
	j.pad.TapTimeout = cfg.TapTimeout
	return j
}

// Tag is the handler identifier input sources queue events for.
func (j *Joystick) Tag() event.Tag {
	return &j.pad
}

// Resize sets the pad and knob sizes used to clamp the cursor
// offset. Call it whenever the layout changes.
func (j *Joystick) Resize(container, knob f32.Point) {
	j.container = container
	j.knob = knob
}

// Update processes pending pointer events and returns the actions
// fired. Gestures without a configured action are dropped.
func (j *Joystick) Update(m unit.Metric, q event.Queue) []ActionEvent {
	return j.actions(j.pad.Events(m, q, j.bounds()))
}

// Tick fires the deferred tap if now has reached its deadline.
func (j *Joystick) Tick(now time.Duration) []ActionEvent {
	if ev, ok := j.pad.Tick(now); ok {
		return j.actions([]gesture.PadEvent{ev})
	}
	return nil
}

// Deadline reports when a deferred tap fires, if one is pending.
// Hosts schedule a wakeup for it and call Tick.
func (j *Joystick) Deadline() (time.Duration, bool) {
	return j.pad.Deadline()
}

// Offset is the clamped visual cursor offset from the pad center.
func (j *Joystick) Offset() f32.Point {
	return j.pad.Offset()
}

// Smooth reports whether the cursor should ease back to its
// position rather than track it directly.
func (j *Joystick) Smooth() bool {
	return j.pad.Smooth()
}

// Pressed reports whether a session is live.
func (j *Joystick) Pressed() bool {
	return j.pad.Pressed()
}

// Close cancels the session in progress and the deferred tap.
// Call it on teardown so no deferred tap fires against a destroyed
// target.
func (j *Joystick) Close() {
	j.pad.Stop()
}

func (j *Joystick) bounds() gesture.Bounds {
	return gesture.Bounds{Container: j.container, Knob: j.knob}
}

func (j *Joystick) actions(evts []gesture.PadEvent) []ActionEvent {
	var actions []ActionEvent
	for _, e := range evts {
		act := j.cfg.action(e.Gesture)
		if act == nil {
			// An unconfigured gesture is dropped, not an error.
			continue
		}
		actions = append(actions, ActionEvent{Gesture: e.Gesture, Action: act})
	}
	return actions
}
