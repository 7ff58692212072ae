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

// Package autotile selects textures for occupied tiles.
//
// The texture atlas is a 64×48 image made of 8×8 pieces: edges, outer and
// inner corners, crossings and a solid piece.  Which piece is drawn for a
// tile depends only on which of its eight neighbours are occupied.  The
// mapping from all 256 neighbour masks to pieces is a fixed table.
package autotile

import (
	"slices"

	"seehuhn.de/go/lightmap/grid"
)

// Atlas and piece geometry, in pixels.
const (
	TileSize    = 8
	AtlasWidth  = 64
	AtlasHeight = 48
)

// Coord is a pixel position inside the atlas.
type Coord struct {
	X, Y int
}

// Solid is the piece used for isolated tiles.
var Solid = Coord{56, 0}

// Lookup returns the top-left corner of the atlas piece for a tile with
// the given neighbours.
func Lookup(m grid.Mask) Coord {
	return table[m]
}

// Resolve returns the atlas pixel to draw at sub-tile pixel (px, py).
// px and py are taken modulo [TileSize], so callers can pass the pixel
// position in the whole map.
func Resolve(m grid.Mask, px, py int) Coord {
	c := table[m]
	c.X += mod(px, TileSize)
	c.Y += mod(py, TileSize)
	return c
}

// Pieces returns the distinct atlas pieces referenced by the table, in
// row-major atlas order.
func Pieces() []Coord {
	var res []Coord
	for _, c := range table {
		if !slices.Contains(res, c) {
			res = append(res, c)
		}
	}
	slices.SortFunc(res, func(a, b Coord) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return res
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
