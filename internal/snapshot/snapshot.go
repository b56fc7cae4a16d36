/*
 * Copyright (C) 2023 by Jason Figge
 */

package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"ray-casting/internal/framebuffer"
	"ray-casting/internal/player"
	"ray-casting/internal/raycast"
	"ray-casting/internal/world"
)

const (
	// MapFraction is the share of the image width given to the map overlay.
	MapFraction = 0.25
	// RayEvery draws one ray in this many columns on the overlay.
	RayEvery = 8
)

// Writer saves frames as PNG files with a top-down view of the map and the
// rays that produced them.
type Writer struct {
	Dir     string
	Map     *world.Map
	Scale   int
	Palette framebuffer.Palette

	now func() time.Time
}

func NewWriter(dir string, m *world.Map, scale int) *Writer {
	return &Writer{
		Dir:     dir,
		Map:     m,
		Scale:   scale,
		Palette: framebuffer.DefaultPalette(),
		now:     time.Now,
	}
}

// Capture writes frame to a timestamped file in Dir.
func (w *Writer) Capture(frame *framebuffer.Frame, hits []raycast.WallHit, cam player.Camera) error {
	img := Image(frame)
	Overlay(img, w.Map, hits, cam, w.Palette)
	path := filepath.Join(w.Dir, fmt.Sprintf("snapshot-%s.png", w.now().Format("20060102-150405.000")))
	if err := Save(path, img, w.Scale); err != nil {
		return err
	}
	log.Printf("snapshot written to %s", path)
	return nil
}

// Render casts and draws one frame off screen, with the map overlay.
func Render(m *world.Map, cam *player.Camera, width, height int, p framebuffer.Palette) (*image.RGBA, error) {
	frame, err := framebuffer.New(width, height)
	if err != nil {
		return nil, err
	}
	hits, err := raycast.Cast(m, cam, width, height)
	if err != nil {
		return nil, err
	}
	frame.Clear(framebuffer.Ceiling, framebuffer.Floor)
	frame.Draw(hits, p)
	img := Image(frame)
	Overlay(img, m, hits, *cam, p)
	return img, nil
}

// Image copies frame into a packed RGBA image.
func Image(frame *framebuffer.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	row := frame.Width * framebuffer.BytesPerPixel
	for y := 0; y < frame.Height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+row], frame.Pix[y*frame.Pitch:y*frame.Pitch+row])
	}
	return img
}

// CellSize is the overlay size of one map cell in pixels for an image width
// pixels wide.
func CellSize(m *world.Map, width int) float64 {
	return math.Max(2, math.Floor(float64(width)*MapFraction/float64(m.Width())))
}

// Overlay draws the map walls, the camera and every RayEvery'th ray in the
// top-left corner of img.
func Overlay(img *image.RGBA, m *world.Map, hits []raycast.WallHit, cam player.Camera, p framebuffer.Palette) {
	dc := gg.NewContextForRGBA(img)
	cell := CellSize(m, img.Bounds().Dx())

	dc.SetRGBA255(0, 0, 0, 0xC0)
	dc.DrawRectangle(0, 0, cell*float64(m.Width()), cell*float64(m.Height()))
	dc.Fill()
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			tile, _ := m.TileAt(x, y)
			if !world.IsWall(tile) {
				continue
			}
			dc.SetColor(toColor(p.Color(tile, raycast.SideX)))
			dc.DrawRectangle(float64(x)*cell, float64(y)*cell, cell, cell)
			dc.Fill()
		}
	}

	px, py := cam.Position.X*cell, cam.Position.Y*cell
	dc.SetRGBA255(0xFF, 0xFF, 0xFF, 0x40)
	dc.SetLineWidth(1)
	for i := 0; i < len(hits); i += RayEvery {
		end := cam.Position.Add(hits[i].RayDir.Scale(hits[i].PerpDist))
		dc.DrawLine(px, py, end.X*cell, end.Y*cell)
		dc.Stroke()
	}

	dc.SetRGBA255(0xFF, 0, 0, 0xFF)
	dc.DrawLine(px, py, px+cam.Direction.X*cell*2, py+cam.Direction.Y*cell*2)
	dc.Stroke()
	dc.DrawCircle(px, py, math.Max(2, cell/3))
	dc.Fill()
}

// Save writes img as a PNG, scaled up by scale with nearest neighbour
// sampling.
func Save(path string, img image.Image, scale int) error {
	if scale > 1 {
		b := img.Bounds()
		img = imaging.Resize(img, b.Dx()*scale, b.Dy()*scale, imaging.NearestNeighbor)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func toColor(c uint32) color.RGBA {
	r, g, b, a := framebuffer.RGBA(c)
	return color.RGBA{R: r, G: g, B: b, A: a}
}
