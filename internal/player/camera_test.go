/*
 * Copyright (C) 2023 by Jason Figge
 */

package player

import (
	"errors"
	"math"
	"testing"

	"ray-casting/internal/vmath"
	"ray-casting/internal/world"
)

func newTestCamera(t *testing.T) *Camera {
	t.Helper()
	c, err := NewCamera(vmath.Vec2{X: 2.5, Y: 2.5}, vmath.Vec2{X: -1, Y: 0}, 66)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNewCameraPlane(t *testing.T) {
	c := newTestCamera(t)
	if c.Plane.X != 0 || c.Plane.Y <= 0 {
		t.Errorf("plane = %+v, want (0, >0) for direction (-1, 0)", c.Plane)
	}
	if math.Abs(c.Plane.Y-math.Tan(33*math.Pi/180)) > 1e-12 {
		t.Errorf("plane length = %v, want tan(33deg)", c.Plane.Y)
	}
	if math.Abs(c.FOV()-66) > 1e-9 {
		t.Errorf("FOV() = %v, want 66", c.FOV())
	}
}

func TestNewCameraRejects(t *testing.T) {
	if _, err := NewCamera(vmath.Vec2{}, vmath.Vec2{}, 66); !errors.Is(err, ErrZeroDirection) {
		t.Errorf("zero direction error = %v", err)
	}
	if _, err := NewCamera(vmath.Vec2{}, vmath.Vec2{X: 1}, 180); err == nil {
		t.Errorf("fov 180 accepted")
	}
}

func TestRotatePreservesMagnitude(t *testing.T) {
	c := newTestCamera(t)
	dirLen, planeLen := c.Direction.Len(), c.Plane.Len()
	angles := []float64{0.01, -0.3, 1.7, math.Pi, -2.9, 1e-6, 12.5}
	for i := 0; i < 500; i++ {
		c.Rotate(angles[i%len(angles)])
		if math.Abs(c.Direction.Len()-dirLen) > 1e-9 {
			t.Fatalf("step %d: |direction| = %v, want %v", i, c.Direction.Len(), dirLen)
		}
		if math.Abs(c.Plane.Len()-planeLen) > 1e-9 {
			t.Fatalf("step %d: |plane| = %v, want %v", i, c.Plane.Len(), planeLen)
		}
	}
}

func TestRotateKeepsPlanePerpendicular(t *testing.T) {
	c := newTestCamera(t)
	c.Rotate(0.7)
	dot := c.Direction.X*c.Plane.X + c.Direction.Y*c.Plane.Y
	if math.Abs(dot) > 1e-12 {
		t.Errorf("direction . plane = %v after rotation, want 0", dot)
	}
}

func TestFullTurnReturnsHome(t *testing.T) {
	c := newTestCamera(t)
	dir, plane := c.Direction, c.Plane
	const steps = 360
	for i := 0; i < steps; i++ {
		c.Rotate(2 * math.Pi / steps)
	}
	if !c.Direction.ApproxEqual(dir, 1e-6) || !c.Plane.ApproxEqual(plane, 1e-6) {
		t.Errorf("after full turn dir=%+v plane=%+v, want %+v %+v", c.Direction, c.Plane, dir, plane)
	}
}

func TestValidate(t *testing.T) {
	m, err := world.Parse([]string{
		"11111",
		"10001",
		"10201",
		"11111",
	})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		pos     vmath.Vec2
		wantErr error
	}{
		{vmath.Vec2{X: 1.5, Y: 1.5}, nil},
		{vmath.Vec2{X: 2.5, Y: 2.5}, ErrCameraInWall},
		{vmath.Vec2{X: 0.5, Y: 1.5}, ErrCameraInWall},
		{vmath.Vec2{X: -1, Y: 1.5}, ErrCameraOutOfBounds},
		{vmath.Vec2{X: 1.5, Y: 4}, ErrCameraOutOfBounds},
	}
	for _, tt := range tests {
		c := &Camera{Position: tt.pos, Direction: vmath.Vec2{X: 1}}
		if err := c.Validate(m); !errors.Is(err, tt.wantErr) {
			t.Errorf("Validate(%+v) = %v, want %v", tt.pos, err, tt.wantErr)
		}
	}
}
