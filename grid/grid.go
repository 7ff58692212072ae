// seehuhn.de/go/lightmap - tile map lighting renderer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package grid implements the occupancy grid of a tile map.
//
// Tile (0, 0) is in the top-left corner, x grows to the right and y grows
// downwards.  Continuous positions use tile units, so that the tile (i, j)
// covers the square [i, i+1) × [j, j+1).
package grid

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/geom/vec"
)

var (
	// ErrEmpty is returned when a grid would have no tiles.
	ErrEmpty = errors.New("grid: width and height must be positive")

	// ErrOutside is returned when a tile coordinate is not part of the grid.
	ErrOutside = errors.New("grid: tile outside the grid")
)

// Grid records which tiles of a map are occupied.
//
// A Grid is safe for concurrent reads once construction is complete.
type Grid struct {
	width, height int
	cells         []bool // row-major
}

// New allocates a grid where all tiles are free.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w (got %dx%d)", ErrEmpty, width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}, nil
}

// Width returns the number of tile columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of tile rows.
func (g *Grid) Height() int { return g.height }

// Set marks the tile (x, y) as occupied or free.
func (g *Grid) Set(x, y int, occupied bool) error {
	if !g.inside(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutside, x, y, g.width, g.height)
	}
	g.cells[y*g.width+x] = occupied
	return nil
}

// Occupied reports whether tile (x, y) is occupied.
// Tiles outside the grid are free.
func (g *Grid) Occupied(x, y int) bool {
	return g.inside(x, y) && g.cells[y*g.width+x]
}

// OccupiedAt reports whether the tile containing the point p is occupied.
func (g *Grid) OccupiedAt(p vec.Vec2) bool {
	// Floor, rather than truncation, keeps (-0.5, 0) out of tile 0.
	x := math.Floor(p.X)
	y := math.Floor(p.Y)
	if x < 0 || y < 0 || x >= float64(g.width) || y >= float64(g.height) {
		return false
	}
	return g.cells[int(y)*g.width+int(x)]
}

// Count returns the number of occupied tiles.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

func (g *Grid) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// String returns the grid in the text format read by [Parse].
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := range g.height {
		for x := range g.width {
			if g.cells[y*g.width+x] {
				b.WriteByte(Wall)
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
