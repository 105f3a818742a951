// SPDX-License-Identifier: Unlicense OR MIT

// Command swipepad is a terminal demo of the swipe pad. It draws
// the pad and its cursor, feeds terminal mouse input through the
// gesture pipeline and logs every fired action.
//
// Drag the knob with the mouse. A short click taps, two clicks
// double-tap, a longer drag swipes. Press q or Escape to quit.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/breakthestatic/ha-swipe-pad/f32"
	"github.com/breakthestatic/ha-swipe-pad/io/input"
	"github.com/breakthestatic/ha-swipe-pad/unit"
	"github.com/breakthestatic/ha-swipe-pad/widget"
)

const (
	padWidth   = 41
	padHeight  = 21
	knobWidth  = 5
	knobHeight = 3
)

type demo struct {
	screen tcell.Screen
	log    *logrus.Logger

	joystick *widget.Joystick
	router   input.Router
	mouse    input.MouseSource

	// start anchors the relative event timestamps.
	start time.Time
	// tapTimer wakes the loop up when a deferred tap comes due.
	tapTimer *time.Timer

	// padX, padY is the top-left cell of the pad interior.
	padX, padY int
	buttons    tcell.ButtonMask
	lastAction string
}

var metric = unit.Metric{PxPerDp: 1}

func newDemo(log *logrus.Logger) (*demo, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Terminal cells stand in for pixels, so the default dp
	// thresholds are far too coarse here.
	joystick := widget.NewJoystick(widget.Config{
		Tap:            service("light.toggle"),
		DoubleTap:      service("light.turn_off"),
		Up:             service("media_player.volume_up"),
		Down:           service("media_player.volume_down"),
		Left:           service("media_player.media_previous_track"),
		Right:          service("media_player.media_next_track"),
		SwipeThreshold: 6,
		TapThreshold:   2,
	})
	joystick.Resize(f32.Pt(padWidth, padHeight), f32.Pt(knobWidth, knobHeight))

	d := &demo{
		screen:   screen,
		log:      log,
		joystick: joystick,
		start:    time.Now(),
	}
	d.mouse = input.MouseSource{Router: &d.router, Tag: joystick.Tag()}
	d.tapTimer = time.NewTimer(time.Hour)
	d.tapTimer.Stop()
	d.layout()
	return d, nil
}

// service returns a Home Assistant style action descriptor. The
// pad passes it through opaquely; the demo only logs it.
func service(name string) any {
	return map[string]string{"action": "call-service", "service": name}
}

func (d *demo) elapsed() time.Duration {
	return time.Since(d.start)
}

// layout centers the pad on the screen.
func (d *demo) layout() {
	w, h := d.screen.Size()
	d.padX = (w - padWidth) / 2
	d.padY = (h - padHeight) / 2
}

func (d *demo) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventResize:
		d.layout()
		d.screen.Sync()
	case *tcell.EventMouse:
		d.handleMouse(ev)
	}
	return true
}

func (d *demo) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pos := f32.Pt(float32(x), float32(y))
	now := d.elapsed()

	held := ev.Buttons() & tcell.Button1
	was := d.buttons & tcell.Button1
	switch {
	case held != 0 && was == 0:
		d.mouse.Start(pos, now)
	case held == 0 && was != 0:
		d.mouse.End(pos, now)
	default:
		d.mouse.Move(pos, now)
	}
	d.buttons = ev.Buttons()

	d.dispatch(d.joystick.Update(metric, &d.router))
}

// dispatch logs fired actions and rearms the deferred-tap wakeup.
func (d *demo) dispatch(actions []widget.ActionEvent) {
	for _, a := range actions {
		d.lastAction = a.Gesture.String()
		d.log.WithFields(logrus.Fields{
			"gesture": a.Gesture.String(),
			"action":  a.Action,
		}).Info("gesture fired")
	}
	if deadline, ok := d.joystick.Deadline(); ok {
		d.tapTimer.Reset(deadline - d.elapsed())
	}
}

func (d *demo) draw() {
	s := d.screen
	s.Clear()

	border := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := -1; x <= padWidth; x++ {
		s.SetContent(d.padX+x, d.padY-1, tcell.RuneHLine, nil, border)
		s.SetContent(d.padX+x, d.padY+padHeight, tcell.RuneHLine, nil, border)
	}
	for y := 0; y < padHeight; y++ {
		s.SetContent(d.padX-1, d.padY+y, tcell.RuneVLine, nil, border)
		s.SetContent(d.padX+padWidth, d.padY+y, tcell.RuneVLine, nil, border)
	}
	s.SetContent(d.padX-1, d.padY-1, tcell.RuneULCorner, nil, border)
	s.SetContent(d.padX+padWidth, d.padY-1, tcell.RuneURCorner, nil, border)
	s.SetContent(d.padX-1, d.padY+padHeight, tcell.RuneLLCorner, nil, border)
	s.SetContent(d.padX+padWidth, d.padY+padHeight, tcell.RuneLRCorner, nil, border)

	knob := tcell.StyleDefault.Background(tcell.ColorTeal)
	if d.joystick.Pressed() {
		knob = tcell.StyleDefault.Background(tcell.ColorAqua)
	}
	off := d.joystick.Offset()
	kx := d.padX + (padWidth-knobWidth)/2 + int(off.X)
	ky := d.padY + (padHeight-knobHeight)/2 + int(off.Y)
	for y := 0; y < knobHeight; y++ {
		for x := 0; x < knobWidth; x++ {
			s.SetContent(kx+x, ky+y, ' ', nil, knob)
		}
	}

	status := "ready"
	if d.joystick.Pressed() {
		status = "tracking"
	}
	msg := fmt.Sprintf(" %s  last: %s  (q quits) ", status, d.lastAction)
	for i, r := range msg {
		s.SetContent(d.padX+i-1, d.padY+padHeight+1, r, nil, tcell.StyleDefault)
	}

	s.Show()
}

func (d *demo) run() {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go d.screen.ChannelEvents(events, quit)

	frame := time.NewTicker(33 * time.Millisecond)
	defer frame.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !d.handleEvent(ev) {
				close(quit)
				return
			}
		case <-d.tapTimer.C:
			d.dispatch(d.joystick.Tick(d.elapsed()))
		case <-frame.C:
			d.draw()
		}
	}
}

func (d *demo) cleanup() {
	d.joystick.Close()
	d.tapTimer.Stop()
	d.screen.Fini()
}

func main() {
	logPath := flag.String("log", "swipepad.log", "append fired actions to this file")
	flag.Parse()

	log := logrus.New()
	f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	log.SetOutput(f)

	d, err := newDemo(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer d.cleanup()

	d.run()
}
