/*
 * Copyright (C) 2023 by Jason Figge
 */

package world

import (
	"errors"
	"fmt"
)

// Tile identifies the contents of one map cell. Zero is open floor, anything
// else is a wall and selects its colour.
type Tile uint8

const Empty Tile = 0

var (
	ErrEmptyMap    = errors.New("map has no cells")
	ErrRaggedMap   = errors.New("map rows differ in length")
	ErrOpenBorder  = errors.New("map border is not solid")
	ErrOutOfBounds = errors.New("cell outside map")
	ErrBadTile     = errors.New("invalid tile character")
)

// Map is an immutable rectangular grid of tiles whose border cells are all
// walls.
type Map struct {
	width  int
	height int
	tiles  []Tile
}

// NewMap copies rows (indexed [y][x]) into a Map. Every row must have the same
// length and every border cell must be a wall.
func NewMap(rows [][]Tile) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}
	m := &Map{
		width:  len(rows[0]),
		height: len(rows),
	}
	m.tiles = make([]Tile, 0, m.width*m.height)
	for y, row := range rows {
		if len(row) != m.width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), m.width, ErrRaggedMap)
		}
		m.tiles = append(m.tiles, row...)
	}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if !m.onBorder(x, y) {
				continue
			}
			if !IsWall(m.tiles[y*m.width+x]) {
				return nil, fmt.Errorf("cell (%d, %d): %w", x, y, ErrOpenBorder)
			}
		}
	}
	return m, nil
}

// Parse builds a Map from one string per row, one digit per cell.
func Parse(lines []string) (*Map, error) {
	rows := make([][]Tile, len(lines))
	for y, line := range lines {
		rows[y] = make([]Tile, len(line))
		for x, ch := range []byte(line) {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("cell (%d, %d) %q: %w", x, y, ch, ErrBadTile)
			}
			rows[y][x] = Tile(ch - '0')
		}
	}
	return NewMap(rows)
}

func (m *Map) Width() int {
	return m.width
}

func (m *Map) Height() int {
	return m.height
}

// InBounds reports whether (x, y) addresses a cell of the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// TileAt returns the tile at (x, y), or ErrOutOfBounds.
func (m *Map) TileAt(x, y int) (Tile, error) {
	if !m.InBounds(x, y) {
		return Empty, fmt.Errorf("(%d, %d) in %dx%d map: %w", x, y, m.width, m.height, ErrOutOfBounds)
	}
	return m.tiles[y*m.width+x], nil
}

// WallAt reports whether (x, y) holds a wall.
func (m *Map) WallAt(x, y int) (bool, error) {
	t, err := m.TileAt(x, y)
	if err != nil {
		return false, err
	}
	return IsWall(t), nil
}

func IsWall(t Tile) bool {
	return t != Empty
}

func (m *Map) onBorder(x, y int) bool {
	return x == 0 || y == 0 || x == m.width-1 || y == m.height-1
}
