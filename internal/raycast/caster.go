/*
 * Copyright (C) 2023 by Jason Figge
 */

package raycast

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"ray-casting/internal/player"
	"ray-casting/internal/vmath"
	"ray-casting/internal/world"
)

// Side is the grid axis the ray crossed to reach the wall.
type Side uint8

const (
	SideX Side = 0
	SideY Side = 1
)

const (
	// parallel stands in for the cell crossing length of an axis the ray never
	// crosses.
	parallel = 1e30

	// minPerpDist keeps a camera standing exactly on a wall face from dividing
	// by zero.
	minPerpDist = 1e-6
)

var ErrNoWall = errors.New("ray did not hit a wall")

// WallHit describes the wall seen through one screen column.
type WallHit struct {
	Column int
	RayDir vmath.Vec2

	// PerpDist is the distance to the wall along the view direction, not
	// along the ray.
	PerpDist float64
	MapX     int
	MapY     int
	Side     Side
	Tile     world.Tile

	// Steps is the number of cell boundaries crossed.
	Steps int

	LineHeight int
	DrawStart  int
	DrawEnd    int
}

// CameraX maps screen column x of a width-column image to camera space [-1, 1).
func CameraX(x, width int) float64 {
	return 2*float64(x)/float64(width) - 1
}

// CastColumn walks the grid from the camera along the ray for camX until it
// enters a wall cell.
func CastColumn(m *world.Map, cam *player.Camera, camX float64) (WallHit, error) {
	rayDir := cam.Direction.Add(cam.Plane.Scale(camX))
	mapX, mapY := cam.Position.Cell()

	deltaX, deltaY := parallel, parallel
	if rayDir.X != 0 {
		deltaX = math.Abs(1 / rayDir.X)
	}
	if rayDir.Y != 0 {
		deltaY = math.Abs(1 / rayDir.Y)
	}

	var stepX, stepY int
	var sideX, sideY float64
	if rayDir.X < 0 {
		stepX = -1
		sideX = (cam.Position.X - float64(mapX)) * deltaX
	} else {
		stepX = 1
		sideX = (float64(mapX) + 1 - cam.Position.X) * deltaX
	}
	if rayDir.Y < 0 {
		stepY = -1
		sideY = (cam.Position.Y - float64(mapY)) * deltaY
	} else {
		stepY = 1
		sideY = (float64(mapY) + 1 - cam.Position.Y) * deltaY
	}

	hit := WallHit{RayDir: rayDir}
	limit := m.Width() + m.Height()
	for {
		if sideX < sideY {
			sideX += deltaX
			mapX += stepX
			hit.Side = SideX
		} else {
			sideY += deltaY
			mapY += stepY
			hit.Side = SideY
		}
		hit.Steps++

		tile, err := m.TileAt(mapX, mapY)
		if err != nil {
			return hit, err
		}
		if world.IsWall(tile) {
			hit.Tile = tile
			break
		}
		if hit.Steps >= limit {
			return hit, fmt.Errorf("gave up after %d steps at (%d, %d): %w", hit.Steps, mapX, mapY, ErrNoWall)
		}
	}

	hit.MapX, hit.MapY = mapX, mapY
	if hit.Side == SideX {
		hit.PerpDist = sideX - deltaX
	} else {
		hit.PerpDist = sideY - deltaY
	}
	if hit.PerpDist < minPerpDist {
		hit.PerpDist = minPerpDist
	}
	return hit, nil
}

// Span returns the projected height of a wall at perpDist on a screen of
// height rows, and the first and last rows it covers.
func Span(perpDist float64, height int) (lineHeight, start, end int) {
	lineHeight = int(math.Floor(float64(height) / perpDist))
	start = clamp(-lineHeight/2+height/2, 0, height-1)
	end = clamp(lineHeight/2+height/2, 0, height-1)
	return lineHeight, start, end
}

// Cast returns one WallHit per column of a width x height image.
func Cast(m *world.Map, cam *player.Camera, width, height int) ([]WallHit, error) {
	if width <= 0 || height <= 0 {
		return nil, nil
	}
	hits := make([]WallHit, width)
	if err := castRange(hits, 0, width, m, cam, height); err != nil {
		return nil, err
	}
	return hits, nil
}

// Caster casts columns in bands on separate goroutines. Columns share no state,
// so the result is identical to Cast.
type Caster struct {
	Workers int
}

// CastInto fills hits, one entry per column of an image len(hits) wide.
func (c Caster) CastInto(hits []WallHit, m *world.Map, cam *player.Camera, height int) error {
	width := len(hits)
	workers := c.Workers
	if workers > width {
		workers = width
	}
	if workers <= 1 {
		return castRange(hits, 0, width, m, cam, height)
	}

	band := (width + workers - 1) / workers
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		from, to := w*band, min((w+1)*band, width)
		if from >= to {
			continue
		}
		wg.Add(1)
		go func(w, from, to int) {
			defer wg.Done()
			errs[w] = castRange(hits, from, to, m, cam, height)
		}(w, from, to)
	}
	wg.Wait()
	return errors.Join(errs...)
}

func castRange(hits []WallHit, from, to int, m *world.Map, cam *player.Camera, height int) error {
	width := len(hits)
	for x := from; x < to; x++ {
		hit, err := CastColumn(m, cam, CameraX(x, width))
		if err != nil {
			return fmt.Errorf("column %d: %w", x, err)
		}
		hit.Column = x
		hit.LineHeight, hit.DrawStart, hit.DrawEnd = Span(hit.PerpDist, height)
		hits[x] = hit
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
