/*
 * Copyright (C) 2023 by Jason Figge
 */

package terminal

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"ray-casting/internal/framebuffer"
)

func newTestScreen(t *testing.T, cols, rows int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := New(sim, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	sim.SetSize(cols, rows)
	t.Cleanup(func() { _ = s.Close() })
	return s, sim
}

// fixedClock lets a test step the screen's notion of time.
type fixedClock struct{ t time.Time }

func (c *fixedClock) now() time.Time { return c.t }

func TestSizeDoublesRows(t *testing.T) {
	s, _ := newTestScreen(t, 20, 6)
	w, h := s.Size()
	if w != 20 || h != 12 {
		t.Errorf("Size() = %dx%d, want 20x12", w, h)
	}
}

func TestPresentHalfBlocks(t *testing.T) {
	s, sim := newTestScreen(t, 4, 3)
	f, err := framebuffer.New(4, 6)
	if err != nil {
		t.Fatal(err)
	}
	f.Clear(framebuffer.Ceiling, framebuffer.Floor)
	framebuffer.FillColumn(f.Pix, f.Pitch, 2, 2, 3, framebuffer.Red)

	if err := s.Present(f.Pix, f.Width, f.Height, f.Pitch); err != nil {
		t.Fatal(err)
	}

	r, _, style, _ := sim.GetContent(2, 1)
	if r != halfBlock {
		t.Fatalf("cell (2, 1) = %q, want half block", r)
	}
	fg, bg, _ := style.Decompose()
	if want := tcell.NewRGBColor(0xFF, 0, 0); fg != want || bg != want {
		t.Errorf("cell (2, 1) colours %v/%v, want red/red", fg, bg)
	}

	_, _, style, _ = sim.GetContent(0, 0)
	fg, bg, _ = style.Decompose()
	if want := tcell.NewRGBColor(0x23, 0x23, 0x23); fg != want || bg != want {
		t.Errorf("cell (0, 0) colours %v/%v, want ceiling", fg, bg)
	}
}

func TestTitleOnFirstRow(t *testing.T) {
	s, sim := newTestScreen(t, 8, 2)
	f, err := framebuffer.New(8, 4)
	if err != nil {
		t.Fatal(err)
	}
	s.SetTitle("fps 60")
	if err := s.Present(f.Pix, f.Width, f.Height, f.Pitch); err != nil {
		t.Fatal(err)
	}
	for i, want := range "fps 60" {
		if r, _, _, _ := sim.GetContent(i, 0); r != want {
			t.Errorf("title cell %d = %q, want %q", i, r, want)
		}
	}
	if r, _, _, _ := sim.GetContent(0, 1); r != halfBlock {
		t.Errorf("second row = %q, want frame", r)
	}
}

func TestKeysHeldUntilTimeout(t *testing.T) {
	s, _ := newTestScreen(t, 10, 5)
	clock := &fixedClock{t: time.Unix(100, 0)}
	s.now = clock.now

	s.events <- tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)
	s.events <- tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone)
	state, err := s.Poll()
	if err != nil {
		t.Fatal(err)
	}
	if !state.Forward || !state.Right || state.Backward || state.Left {
		t.Errorf("state = %+v, want forward+right", state.Snapshot)
	}

	clock.t = clock.t.Add(100 * time.Millisecond)
	if state, _ = s.Poll(); !state.Forward {
		t.Errorf("forward released before hold expired")
	}

	clock.t = clock.t.Add(100 * time.Millisecond)
	if state, _ = s.Poll(); state.Forward || state.Right {
		t.Errorf("keys still held after hold expired: %+v", state.Snapshot)
	}
}

func TestArrowKeysTurn(t *testing.T) {
	s, _ := newTestScreen(t, 10, 5)
	clock := &fixedClock{t: time.Unix(100, 0)}
	s.now = clock.now
	if _, err := s.Poll(); err != nil {
		t.Fatal(err)
	}

	clock.t = clock.t.Add(50 * time.Millisecond)
	s.events <- tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)
	state, _ := s.Poll()
	if state.MouseDelta.X != 50 {
		t.Errorf("turn delta = %v, want 50", state.MouseDelta.X)
	}
}

func TestMouseDelta(t *testing.T) {
	s, _ := newTestScreen(t, 10, 5)
	s.events <- tcell.NewEventMouse(4, 2, tcell.ButtonNone, tcell.ModNone)
	s.events <- tcell.NewEventMouse(7, 3, tcell.ButtonNone, tcell.ModNone)
	state, err := s.Poll()
	if err != nil {
		t.Fatal(err)
	}
	if state.MouseDelta.X != 24 {
		t.Errorf("mouse delta = %v, want 3 cells x 8", state.MouseDelta.X)
	}
}

func TestQuitAndCapture(t *testing.T) {
	tests := []struct {
		name    string
		ev      *tcell.EventKey
		quit    bool
		capture bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true, false},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true, false},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true, false},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestScreen(t, 10, 5)
			s.events <- tt.ev
			state, err := s.Poll()
			if err != nil {
				t.Fatal(err)
			}
			if state.Quit != tt.quit || state.Capture != tt.capture {
				t.Errorf("quit=%v capture=%v, want %v %v", state.Quit, state.Capture, tt.quit, tt.capture)
			}
		})
	}
}

func TestClosed(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := New(sim, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Poll(); !errors.Is(err, ErrClosed) {
		t.Errorf("Poll() after Close = %v", err)
	}
	if err := s.Present(nil, 0, 0, 0); !errors.Is(err, ErrClosed) {
		t.Errorf("Present() after Close = %v", err)
	}
	if err := s.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close() = %v", err)
	}
}
