/*
 * Copyright (C) 2023 by Jason Figge
 */

package framebuffer

import (
	"errors"
	"fmt"

	"ray-casting/internal/raycast"
)

const BytesPerPixel = 4

var (
	ErrBadSize     = errors.New("frame size must be positive")
	ErrShortPitch  = errors.New("pitch shorter than a row")
	ErrShortBuffer = errors.New("pixel buffer too small")
)

// Frame is an RGBA pixel buffer. Rows start Pitch bytes apart.
type Frame struct {
	Pix    []byte
	Width  int
	Height int
	Pitch  int
}

// New allocates a tightly packed width x height frame.
func New(width, height int) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrBadSize)
	}
	pitch := width * BytesPerPixel
	return &Frame{
		Pix:    make([]byte, pitch*height),
		Width:  width,
		Height: height,
		Pitch:  pitch,
	}, nil
}

// Wrap borrows pix, typically a locked texture, as a frame.
func Wrap(pix []byte, width, height, pitch int) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrBadSize)
	}
	if pitch < width*BytesPerPixel {
		return nil, fmt.Errorf("pitch %d for width %d: %w", pitch, width, ErrShortPitch)
	}
	if need := pitch*(height-1) + width*BytesPerPixel; len(pix) < need {
		return nil, fmt.Errorf("%d bytes, need %d: %w", len(pix), need, ErrShortBuffer)
	}
	return &Frame{Pix: pix, Width: width, Height: height, Pitch: pitch}, nil
}

// At returns the packed colour at (x, y).
func (f *Frame) At(x, y int) uint32 {
	i := y*f.Pitch + x*BytesPerPixel
	return uint32(f.Pix[i])<<24 | uint32(f.Pix[i+1])<<16 | uint32(f.Pix[i+2])<<8 | uint32(f.Pix[i+3])
}

// Clear paints the upper half of the frame ceiling and the lower half floor.
func (f *Frame) Clear(ceiling, floor uint32) {
	FillBackground(f.Pix, f.Pitch, f.Width, f.Height, ceiling, floor)
}

// Draw paints one wall column per hit.
func (f *Frame) Draw(hits []raycast.WallHit, p Palette) {
	FillColumns(f.Pix, f.Pitch, hits, p)
}

// FillColumns writes each hit's wall run into pix.
func FillColumns(pix []byte, pitch int, hits []raycast.WallHit, p Palette) {
	for _, hit := range hits {
		FillColumn(pix, pitch, hit.Column, hit.DrawStart, hit.DrawEnd, p.Color(hit.Tile, hit.Side))
	}
}

// FillColumn sets rows start through end of column x to c.
func FillColumn(pix []byte, pitch, x, start, end int, c uint32) {
	r, g, b, a := RGBA(c)
	for y := start; y <= end; y++ {
		i := y*pitch + x*BytesPerPixel
		pix[i] = r
		pix[i+1] = g
		pix[i+2] = b
		pix[i+3] = a
	}
}

// FillRows sets every pixel of rows from (inclusive) to to (exclusive).
func FillRows(pix []byte, pitch, width, from, to int, c uint32) {
	r, g, b, a := RGBA(c)
	for y := from; y < to; y++ {
		row := pix[y*pitch : y*pitch+width*BytesPerPixel]
		for i := 0; i < len(row); i += BytesPerPixel {
			row[i] = r
			row[i+1] = g
			row[i+2] = b
			row[i+3] = a
		}
	}
}

func FillBackground(pix []byte, pitch, width, height int, ceiling, floor uint32) {
	FillRows(pix, pitch, width, 0, height/2, ceiling)
	FillRows(pix, pitch, width, height/2, height, floor)
}
