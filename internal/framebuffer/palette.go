/*
 * Copyright (C) 2023 by Jason Figge
 */

package framebuffer

import (
	"ray-casting/internal/raycast"
	"ray-casting/internal/world"
)

// Colours are packed 0xRRGGBBAA.
const (
	Red     = uint32(0xFF0000FF)
	Green   = uint32(0x00FF00FF)
	Blue    = uint32(0x0000FFFF)
	White   = uint32(0xFFFFFFFF)
	Yellow  = uint32(0xFFFF00FF)
	Ceiling = uint32(0x232323FF)
	Floor   = uint32(0x3A3A3AFF)
)

// Palette selects a wall colour by tile id.
type Palette struct {
	Colors   map[world.Tile]uint32
	Fallback uint32
}

// DefaultPalette colours tiles 1-4 red, green, blue and white; anything else
// is yellow.
func DefaultPalette() Palette {
	return Palette{
		Colors: map[world.Tile]uint32{
			1: Red,
			2: Green,
			3: Blue,
			4: White,
		},
		Fallback: Yellow,
	}
}

// Color returns the colour of tile seen across side. Walls crossed on the Y
// axis are drawn at half brightness.
func (p Palette) Color(tile world.Tile, side raycast.Side) uint32 {
	c, ok := p.Colors[tile]
	if !ok {
		c = p.Fallback
	}
	if side == raycast.SideY {
		c = Shade(c)
	}
	return c
}

// Shade halves the red, green and blue channels of c.
func Shade(c uint32) uint32 {
	return (c>>1)&0x7F7F7F00 | c&0xFF
}

// RGBA unpacks c.
func RGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}
