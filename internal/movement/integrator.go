/*
 * Copyright (C) 2023 by Jason Figge
 */

package movement

import (
	"math"
	"time"

	"ray-casting/internal/input"
	"ray-casting/internal/player"
	"ray-casting/internal/vmath"
	"ray-casting/internal/world"
)

// maxStride is the longest per-axis distance tested in a single probe.
const maxStride = 0.5

// Integrator advances a camera from one tick of input.
type Integrator struct {
	// MoveRate is the walking speed in cells per second.
	MoveRate float64
	// Sensitivity converts horizontal mouse motion in pixels to radians.
	Sensitivity float64
}

// Step moves and turns cam according to in over dt. Each axis of a move is
// tested on its own, so a blocked axis is dropped while the other still
// applies and the camera slides along walls.
//
// Positive horizontal mouse motion turns the view right, toward +Plane.
func (i Integrator) Step(cam *player.Camera, m *world.Map, in input.Snapshot, dt time.Duration) error {
	speed := dt.Seconds() * i.MoveRate

	var moves []vmath.Vec2
	if in.Forward {
		moves = append(moves, cam.Direction.Scale(speed))
	}
	if in.Backward {
		moves = append(moves, cam.Direction.Scale(-speed))
	}
	if in.Right {
		moves = append(moves, cam.Plane.Scale(speed))
	}
	if in.Left {
		moves = append(moves, cam.Plane.Scale(-speed))
	}

	for _, move := range moves {
		// Long frames are split so no probe skips over a wall cell.
		n := int(math.Ceil(math.Max(math.Abs(move.X), math.Abs(move.Y)) / maxStride))
		if n < 1 {
			n = 1
		}
		part := move.Scale(1 / float64(n))
		for s := 0; s < n; s++ {
			if err := slide(cam, m, part); err != nil {
				return err
			}
		}
	}

	if in.MouseDelta.X != 0 {
		cam.Rotate(-in.MouseDelta.X * i.Sensitivity)
	}
	return nil
}

// slide applies delta to the camera one axis at a time. The Y probe uses the
// x coordinate left by the X step, so the cell finally occupied is always the
// one that was tested.
func slide(cam *player.Camera, m *world.Map, delta vmath.Vec2) error {
	pos := cam.Position

	if delta.X != 0 {
		open, err := walkable(m, pos.X+delta.X, pos.Y)
		if err != nil {
			return err
		}
		if open {
			pos.X += delta.X
		}
	}
	if delta.Y != 0 {
		open, err := walkable(m, pos.X, pos.Y+delta.Y)
		if err != nil {
			return err
		}
		if open {
			pos.Y += delta.Y
		}
	}

	cam.Position = pos
	return nil
}

func walkable(m *world.Map, x, y float64) (bool, error) {
	wall, err := m.WallAt(int(math.Floor(x)), int(math.Floor(y)))
	if err != nil {
		return false, err
	}
	return !wall, nil
}
