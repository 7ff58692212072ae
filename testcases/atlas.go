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

package testcases

import (
	"seehuhn.de/go/lightmap/autotile"
)

// Atlas returns a procedurally generated texture atlas.  Every piece is a
// brick pattern with its own stone colour, so that renders show which
// piece was chosen for each tile.
func Atlas() *autotile.Atlas {
	const w, h = autotile.AtlasWidth, autotile.AtlasHeight
	pix := make([]byte, w*h*4)
	for y := range h {
		for x := range w {
			col, row := x/autotile.TileSize, y/autotile.TileSize
			dx, dy := x%autotile.TileSize, y%autotile.TileSize

			// stone colour depends on the piece
			r := uint8(90 + 12*col)
			g := uint8(90 + 14*row)
			b := uint8(110 + 6*((col+row)%4))

			// mortar: rows 3 and 7, staggered vertical joints
			joint := 0
			if dy > 3 {
				joint = 4
			}
			if dy == 3 || dy == 7 || dx == joint {
				r, g, b = r/2, g/2, b/2
			}

			i := (y*w + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, 255
		}
	}

	atlas, err := autotile.NewAtlas(pix, w, h, 4)
	if err != nil {
		panic(err)
	}
	return atlas
}
