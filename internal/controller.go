/*
 * Copyright (C) 2023 by Jason Figge
 */

package internal

import (
	"errors"
	"fmt"
	"log"
	"time"

	"ray-casting/internal/config"
	"ray-casting/internal/framebuffer"
	"ray-casting/internal/input"
	"ray-casting/internal/movement"
	"ray-casting/internal/player"
	"ray-casting/internal/raycast"
	"ray-casting/internal/world"
)

var ErrStopped = errors.New("controller stopped")

// Window is the platform side of the loop: it reports input and displays
// finished frames.
type Window interface {
	Poll() (input.State, error)
	Present(pix []byte, width, height, pitch int) error
	SetTitle(title string)
}

// Capturer saves a presented frame on request.
type Capturer interface {
	Capture(frame *framebuffer.Frame, hits []raycast.WallHit, cam player.Camera) error
}

type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

type Option func(*Controller)

func WithClock(clock Clock) Option {
	return func(c *Controller) {
		c.clock = clock
		c.pacer.Clock = clock
	}
}

func WithCapturer(capturer Capturer) Option {
	return func(c *Controller) {
		c.capturer = capturer
	}
}

// WithWorkers casts columns on n goroutines.
func WithWorkers(n int) Option {
	return func(c *Controller) {
		c.caster.Workers = n
	}
}

func WithPalette(p framebuffer.Palette) Option {
	return func(c *Controller) {
		c.palette = p
	}
}

// Controller runs the frame loop: poll, move, cast, draw, present, pace.
type Controller struct {
	window     Window
	clock      Clock
	pacer      Pacer
	capturer   Capturer
	world      *world.Map
	camera     *player.Camera
	integrator movement.Integrator
	caster     raycast.Caster
	palette    framebuffer.Palette
	frame      *framebuffer.Frame
	hits       []raycast.WallHit
	state      State
	last       time.Time

	frames    int
	busy      time.Duration
	titleFrom time.Time
}

// NewController checks the map and camera and prepares a width x height frame.
func NewController(window Window, m *world.Map, cam *player.Camera, width, height int, opts ...Option) (*Controller, error) {
	if err := cam.Validate(m); err != nil {
		return nil, fmt.Errorf("start pose: %w", err)
	}
	c := &Controller{
		window: window,
		clock:  SystemClock{},
		world:  m,
		camera: cam,
		integrator: movement.Integrator{
			MoveRate:    config.MoveRate,
			Sensitivity: config.MouseSensitivity,
		},
		palette: framebuffer.DefaultPalette(),
		state:   Running,
	}
	c.pacer = Pacer{Interval: config.TickInterval(), Clock: c.clock}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.resize(width, height); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Camera() player.Camera {
	return *c.camera
}

func (c *Controller) Frame() *framebuffer.Frame {
	return c.frame
}

// Run ticks until the window asks to quit or a tick fails. A stopped
// controller cannot be restarted.
func (c *Controller) Run() error {
	if c.state == Stopped {
		return ErrStopped
	}
	c.last = c.clock.Now()
	c.titleFrom = c.last
	for {
		done, err := c.Tick()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Tick runs one frame. It reports true once the loop has stopped.
func (c *Controller) Tick() (bool, error) {
	if c.state == Stopped {
		return true, ErrStopped
	}
	start := c.clock.Now()
	if c.last.IsZero() {
		c.last = start
		c.titleFrom = start
	}
	dt := start.Sub(c.last)
	if dt > config.MaxFrameTime {
		dt = config.MaxFrameTime
	}
	c.last = start

	state, err := c.window.Poll()
	if err != nil {
		return c.stop(fmt.Errorf("poll: %w", err))
	}
	if state.Quit {
		c.state = Stopped
		return true, nil
	}
	if state.Resized {
		if err := c.resize(state.Width, state.Height); err != nil {
			return c.stop(err)
		}
	}

	if err := c.OnUpdate(state.Snapshot, dt); err != nil {
		return c.stop(err)
	}
	if err := c.OnDraw(); err != nil {
		return c.stop(err)
	}
	if err := c.window.Present(c.frame.Pix, c.frame.Width, c.frame.Height, c.frame.Pitch); err != nil {
		return c.stop(fmt.Errorf("present: %w", err))
	}
	if state.Capture && c.capturer != nil {
		if err := c.capturer.Capture(c.frame, c.hits, *c.camera); err != nil {
			log.Printf("snapshot failed: %v", err)
		}
	}

	c.frames++
	c.busy += c.clock.Now().Sub(start)
	c.writeFrameRate(start)
	c.pacer.Wait(start)
	return false, nil
}

// OnUpdate moves the camera for one tick of input.
func (c *Controller) OnUpdate(in input.Snapshot, dt time.Duration) error {
	return c.integrator.Step(c.camera, c.world, in, dt)
}

// OnDraw casts every column and paints the frame.
func (c *Controller) OnDraw() error {
	if err := c.caster.CastInto(c.hits, c.world, c.camera, c.frame.Height); err != nil {
		return fmt.Errorf("cast: %w", err)
	}
	c.frame.Clear(framebuffer.Ceiling, framebuffer.Floor)
	c.frame.Draw(c.hits, c.palette)
	return nil
}

func (c *Controller) resize(width, height int) error {
	if c.frame != nil && c.frame.Width == width && c.frame.Height == height {
		return nil
	}
	frame, err := framebuffer.New(width, height)
	if err != nil {
		return fmt.Errorf("resize: %w", err)
	}
	if c.frame != nil {
		log.Printf("resized to %dx%d", width, height)
	}
	c.frame = frame
	c.hits = make([]raycast.WallHit, width)
	return nil
}

func (c *Controller) stop(err error) (bool, error) {
	c.state = Stopped
	return true, err
}

func (c *Controller) writeFrameRate(now time.Time) {
	if now.Sub(c.titleFrom) < config.TitleInterval || c.frames == 0 {
		return
	}
	avg := c.busy / time.Duration(c.frames)
	fps := float64(c.frames) / now.Sub(c.titleFrom).Seconds()
	c.window.SetTitle(fmt.Sprintf("%s - %.2f ms (%.0f fps)", config.Title, float64(avg.Microseconds())/1000, fps))
	c.frames = 0
	c.busy = 0
	c.titleFrom = now
}
