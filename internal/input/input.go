/*
 * Copyright (C) 2023 by Jason Figge
 */

package input

import "ray-casting/internal/vmath"

// Snapshot is the movement input held during one tick.
type Snapshot struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool

	// MouseDelta is the pointer motion since the previous tick, in pixels.
	MouseDelta vmath.Vec2
}

// Idle reports whether the snapshot requests no movement or rotation.
func (s Snapshot) Idle() bool {
	return !s.Forward && !s.Backward && !s.Left && !s.Right && s.MouseDelta == (vmath.Vec2{})
}

// State is everything a window reports from one poll.
type State struct {
	Quit bool

	// Resized is set when the drawable area changed to Width x Height.
	Resized bool
	Width   int
	Height  int

	// Capture asks for a snapshot of the next presented frame.
	Capture bool

	Snapshot
}
