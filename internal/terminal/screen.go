/*
 * Copyright (C) 2023 by Jason Figge
 */

package terminal

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"ray-casting/internal/input"
)

// halfBlock shows the upper pixel of a cell in the foreground colour and the
// lower pixel in the background colour.
const halfBlock = '▀'

var ErrClosed = errors.New("terminal closed")

type action int

const (
	forward action = iota
	backward
	left
	right
	turnLeft
	turnRight
	actionCount
)

// Options tune how terminal key and mouse events become held input.
type Options struct {
	// Hold is how long a key counts as held after its last event. Terminals
	// only report presses and auto-repeat, never releases.
	Hold time.Duration
	// TurnPixels is the mouse motion per second reported while a turn key is
	// held.
	TurnPixels float64
	// MouseScale converts one cell of mouse motion into pixels.
	MouseScale float64
}

func DefaultOptions() Options {
	return Options{
		Hold:       150 * time.Millisecond,
		TurnPixels: 1000,
		MouseScale: 8,
	}
}

// Screen presents frames in a terminal, two pixels per character cell.
type Screen struct {
	screen tcell.Screen
	opts   Options
	events chan tcell.Event
	done   chan struct{}
	once   sync.Once
	now    func() time.Time

	held      [actionCount]time.Time
	lastPoll  time.Time
	mouseX    int
	haveMouse bool
	title     string
	closed    bool
}

// Open initialises the controlling terminal.
func Open(opts Options) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	return New(screen, opts)
}

// New takes over an uninitialised tcell screen.
func New(screen tcell.Screen, opts Options) (*Screen, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.EnableMouse()
	screen.Clear()

	s := &Screen{
		screen: screen,
		opts:   opts,
		events: make(chan tcell.Event, 100),
		done:   make(chan struct{}),
		now:    time.Now,
	}
	go s.pump()
	return s, nil
}

func (s *Screen) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// Size returns the frame size in pixels that fills the terminal.
func (s *Screen) Size() (int, int) {
	cols, rows := s.screen.Size()
	return cols, rows * 2
}

// Poll drains queued terminal events without blocking.
func (s *Screen) Poll() (input.State, error) {
	var state input.State
	if s.closed {
		return state, ErrClosed
	}
	now := s.now()
	var dt float64
	if !s.lastPoll.IsZero() {
		dt = now.Sub(s.lastPoll).Seconds()
	}
	s.lastPoll = now

	for drained := false; !drained; {
		select {
		case ev := <-s.events:
			s.handle(ev, now, &state)
		default:
			drained = true
		}
	}

	state.Forward = s.isHeld(forward, now)
	state.Backward = s.isHeld(backward, now)
	state.Left = s.isHeld(left, now)
	state.Right = s.isHeld(right, now)
	if s.isHeld(turnLeft, now) {
		state.MouseDelta.X -= s.opts.TurnPixels * dt
	}
	if s.isHeld(turnRight, now) {
		state.MouseDelta.X += s.opts.TurnPixels * dt
	}
	return state, nil
}

func (s *Screen) handle(ev tcell.Event, now time.Time, state *input.State) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
		state.Resized = true
		state.Width, state.Height = s.Size()
	case *tcell.EventMouse:
		x, _ := e.Position()
		if s.haveMouse {
			state.MouseDelta.X += float64(x-s.mouseX) * s.opts.MouseScale
		}
		s.mouseX, s.haveMouse = x, true
	case *tcell.EventKey:
		switch e.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			state.Quit = true
		case tcell.KeyUp:
			s.held[forward] = now
		case tcell.KeyDown:
			s.held[backward] = now
		case tcell.KeyLeft:
			s.held[turnLeft] = now
		case tcell.KeyRight:
			s.held[turnRight] = now
		case tcell.KeyRune:
			switch e.Rune() {
			case 'q', 'Q':
				state.Quit = true
			case 'p', 'P':
				state.Capture = true
			case 'w', 'W':
				s.held[forward] = now
			case 's', 'S':
				s.held[backward] = now
			case 'a', 'A':
				s.held[left] = now
			case 'd', 'D':
				s.held[right] = now
			}
		}
	}
}

func (s *Screen) isHeld(a action, now time.Time) bool {
	t := s.held[a]
	return !t.IsZero() && now.Sub(t) < s.opts.Hold
}

// Present draws the frame from the top-left corner of the terminal. The
// title, if any, overwrites the first row.
func (s *Screen) Present(pix []byte, width, height, pitch int) error {
	if s.closed {
		return ErrClosed
	}
	cols, rows := s.screen.Size()
	for row := 0; row < rows; row++ {
		top, bottom := row*2, row*2+1
		for col := 0; col < cols; col++ {
			if col >= width || top >= height {
				s.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
				continue
			}
			style := tcell.StyleDefault.Foreground(pixel(pix, pitch, col, top))
			if bottom < height {
				style = style.Background(pixel(pix, pitch, col, bottom))
			}
			s.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range []rune(s.title) {
		if i >= cols {
			break
		}
		s.screen.SetContent(i, 0, r, nil, titleStyle)
	}
	s.screen.Show()
	return nil
}

func (s *Screen) SetTitle(title string) {
	s.title = title
}

// Close restores the terminal.
func (s *Screen) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	s.once.Do(func() { close(s.done) })
	s.screen.Fini()
	return nil
}

func pixel(pix []byte, pitch, x, y int) tcell.Color {
	i := y*pitch + x*4
	return tcell.NewRGBColor(int32(pix[i]), int32(pix[i+1]), int32(pix[i+2]))
}
