/*
 * Copyright (C) 2023 by Jason Figge
 */

package graphics

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"ray-casting/internal/input"
)

var ErrClosed = errors.New("window closed")

// ErrorTrap logs non-fatal SDL failures.
func ErrorTrap(err error) {
	if err != nil {
		log.Printf("graphics: %v", err)
	}
}

// Builder collects window options. Build either returns a ready window or
// releases everything it created.
type Builder struct {
	title       string
	width       int32
	height      int32
	resizable   bool
	grabMouse   bool
	turnRate    float64
	sensitivity float64
}

func NewBuilder(title string) *Builder {
	return &Builder{title: title, width: 800, height: 600}
}

func (b *Builder) Size(width, height int) *Builder {
	b.width, b.height = int32(width), int32(height)
	return b
}

func (b *Builder) Resizable() *Builder {
	b.resizable = true
	return b
}

// GrabMouse hides the cursor and reports relative mouse motion.
func (b *Builder) GrabMouse() *Builder {
	b.grabMouse = true
	return b
}

// KeyTurn lets the arrow keys turn at rate radians per second, reported as
// mouse motion for the given sensitivity in radians per pixel.
func (b *Builder) KeyTurn(rate, sensitivity float64) *Builder {
	b.turnRate, b.sensitivity = rate, sensitivity
	return b
}

func (b *Builder) Build() (*Window, error) {
	if b.width <= 0 || b.height <= 0 {
		return nil, fmt.Errorf("window size %dx%d", b.width, b.height)
	}
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}
	w := &Window{}
	w.AddDestroyer(sdl.Quit)

	flags := uint32(sdl.WINDOW_SHOWN)
	if b.resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	window, err := sdl.CreateWindow(b.title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, b.width, b.height, flags)
	if err != nil {
		w.destroy()
		return nil, fmt.Errorf("create window: %w", err)
	}
	w.window = window
	w.AddDestroyer(func() { ErrorTrap(window.Destroy()) })

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		w.destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	w.renderer = renderer
	w.AddDestroyer(func() { ErrorTrap(renderer.Destroy()) })

	if b.grabMouse {
		sdl.SetRelativeMouseMode(true)
	}
	if b.sensitivity > 0 {
		w.turnPixels = b.turnRate / b.sensitivity
	}
	return w, nil
}

// Window is an SDL window presenting RGBA frames through a streaming texture.
type Window struct {
	window     *sdl.Window
	renderer   *sdl.Renderer
	texture    *sdl.Texture
	texWidth   int
	texHeight  int
	turnPixels float64
	lastPoll   time.Time
	destroyers []func()
	closed     bool
}

// AddDestroyer registers cleanup to run on Close, most recent first.
func (w *Window) AddDestroyer(fn func()) {
	w.destroyers = append(w.destroyers, fn)
}

// Size returns the drawable size in pixels.
func (w *Window) Size() (int, int) {
	width, height := w.window.GetSize()
	return int(width), int(height)
}

// Poll drains pending SDL events and samples the held keys.
func (w *Window) Poll() (input.State, error) {
	var state input.State
	if w.closed {
		return state, ErrClosed
	}
	now := time.Now()
	var dt float64
	if !w.lastPoll.IsZero() {
		dt = now.Sub(w.lastPoll).Seconds()
	}
	w.lastPoll = now

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			state.Quit = true
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				state.Resized = true
				state.Width, state.Height = int(e.Data1), int(e.Data2)
			}
		case *sdl.MouseMotionEvent:
			state.MouseDelta.X += float64(e.XRel)
			state.MouseDelta.Y += float64(e.YRel)
		case *sdl.KeyboardEvent:
			if e.State != sdl.PRESSED || e.Repeat != 0 {
				break
			}
			switch e.Keysym.Scancode {
			case sdl.SCANCODE_Q, sdl.SCANCODE_ESCAPE:
				state.Quit = true
			case sdl.SCANCODE_F12, sdl.SCANCODE_P:
				state.Capture = true
			}
		}
	}

	codes := sdl.GetKeyboardState()
	state.Forward = codes[sdl.SCANCODE_W] == 1 || codes[sdl.SCANCODE_UP] == 1
	state.Backward = codes[sdl.SCANCODE_S] == 1 || codes[sdl.SCANCODE_DOWN] == 1
	state.Left = codes[sdl.SCANCODE_A] == 1
	state.Right = codes[sdl.SCANCODE_D] == 1
	state.MouseDelta.X += keyTurn(codes[sdl.SCANCODE_LEFT] == 1, codes[sdl.SCANCODE_RIGHT] == 1, w.turnPixels, dt)
	return state, nil
}

// Present uploads the frame and shows it stretched over the window.
func (w *Window) Present(pix []byte, width, height, pitch int) error {
	if w.closed {
		return ErrClosed
	}
	if w.texture == nil || w.texWidth != width || w.texHeight != height {
		if err := w.createTexture(width, height); err != nil {
			return err
		}
	}

	dst, dstPitch, err := w.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("lock texture: %w", err)
	}
	copyRows(dst, dstPitch, pix, pitch, width*4, height)
	w.texture.Unlock()

	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("copy texture: %w", err)
	}
	w.renderer.Present()
	return nil
}

func (w *Window) SetTitle(title string) {
	if !w.closed {
		w.window.SetTitle(title)
	}
}

// Close releases the texture, renderer and window and shuts SDL down.
func (w *Window) Close() error {
	if w.closed {
		return ErrClosed
	}
	if w.texture != nil {
		ErrorTrap(w.texture.Destroy())
		w.texture = nil
	}
	w.destroy()
	w.closed = true
	return nil
}

func (w *Window) createTexture(width, height int) error {
	if w.texture != nil {
		ErrorTrap(w.texture.Destroy())
		w.texture = nil
	}
	texture, err := w.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGBA32), int(sdl.TEXTUREACCESS_STREAMING), int32(width), int32(height))
	if err != nil {
		return fmt.Errorf("create %dx%d texture: %w", width, height, err)
	}
	w.texture = texture
	w.texWidth, w.texHeight = width, height
	return nil
}

func (w *Window) destroy() {
	for i := len(w.destroyers) - 1; i >= 0; i-- {
		w.destroyers[i]()
	}
	w.destroyers = nil
}
