/*
 * Copyright (C) 2023 by Jason Figge
 */

package config

import (
	"time"

	"ray-casting/internal/vmath"
)

const (
	Title        = "Ray Caster"
	ScreenWidth  = 1200
	ScreenHeight = 600

	// TickRate is the target number of frames per second.
	TickRate = 60

	// MoveRate is the walking speed in cells per second.
	MoveRate = 5.0

	// MouseSensitivity turns the view this many radians per pixel of
	// horizontal mouse motion.
	MouseSensitivity = 0.003

	// KeyTurnRate is the turning speed of the arrow keys in radians per
	// second.
	KeyTurnRate = 3.0

	HorizontalFOV = 66

	// MaxFrameTime caps the elapsed time fed to movement after a stall.
	MaxFrameTime = 250 * time.Millisecond

	// TitleInterval is how often the frame time is written to the title.
	TitleInterval = time.Second

	SnapshotScale = 2
)

var (
	StartPosition  = vmath.Vec2{X: 22, Y: 12}
	StartDirection = vmath.Vec2{X: -1, Y: 0}
)

// TickInterval is the frame period for TickRate.
func TickInterval() time.Duration {
	return time.Second / TickRate
}
