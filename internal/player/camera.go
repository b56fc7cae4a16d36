/*
 * Copyright (C) 2023 by Jason Figge
 */

package player

import (
	"errors"
	"fmt"
	"math"

	"ray-casting/internal/vmath"
	"ray-casting/internal/world"
)

var (
	ErrCameraOutOfBounds = errors.New("camera outside map")
	ErrCameraInWall      = errors.New("camera inside a wall")
	ErrZeroDirection     = errors.New("camera direction has no length")
)

// Camera is the player's pose. Plane is perpendicular to Direction and its
// length relative to Direction sets half the horizontal field of view.
type Camera struct {
	Position  vmath.Vec2
	Direction vmath.Vec2
	Plane     vmath.Vec2
}

// NewCamera builds a camera at pos looking along dir with a horizontal field of
// view of fov degrees.
func NewCamera(pos, dir vmath.Vec2, fov float64) (*Camera, error) {
	if dir.Len() == 0 {
		return nil, ErrZeroDirection
	}
	if fov <= 0 || fov >= 180 {
		return nil, fmt.Errorf("field of view %v degrees out of range (0, 180)", fov)
	}
	half := math.Tan((fov * math.Pi) / 360)
	return &Camera{
		Position:  pos,
		Direction: dir,
		Plane:     dir.Perp().Scale(half),
	}, nil
}

// Rotate turns the view by angle radians. Direction and Plane are rotated
// together from their previous values.
func (c *Camera) Rotate(angle float64) {
	c.Direction, c.Plane = c.Direction.Rotate(angle), c.Plane.Rotate(angle)
}

// FOV returns the horizontal field of view in degrees.
func (c *Camera) FOV() float64 {
	return 360 * math.Atan2(c.Plane.Len(), c.Direction.Len()) / math.Pi
}

// Validate checks that the camera stands strictly inside m on an open cell.
func (c *Camera) Validate(m *world.Map) error {
	p := c.Position
	if p.X <= 0 || p.Y <= 0 || p.X >= float64(m.Width()) || p.Y >= float64(m.Height()) {
		return fmt.Errorf("position (%.3f, %.3f): %w", p.X, p.Y, ErrCameraOutOfBounds)
	}
	x, y := p.Cell()
	wall, err := m.WallAt(x, y)
	if err != nil {
		return err
	}
	if wall {
		return fmt.Errorf("position (%.3f, %.3f): %w", p.X, p.Y, ErrCameraInWall)
	}
	return nil
}

func (c *Camera) String() string {
	return fmt.Sprintf("pos=(%.2f, %.2f) dir=(%.2f, %.2f)", c.Position.X, c.Position.Y, c.Direction.X, c.Direction.Y)
}
