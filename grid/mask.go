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

package grid

// Mask records which of the eight neighbours of a tile are occupied.
// The bits follow reading order through the 3×3 neighbourhood, starting
// with the most significant bit in the top-left corner:
//
//	NW N  NE     0x80 0x40 0x20
//	W  .  E      0x10  .   0x08
//	SW S  SE     0x04 0x02 0x01
type Mask uint8

// Neighbour bits of a [Mask].
const (
	NW Mask = 1 << 7
	N  Mask = 1 << 6
	NE Mask = 1 << 5
	W  Mask = 1 << 4
	E  Mask = 1 << 3
	SW Mask = 1 << 2
	S  Mask = 1 << 1
	SE Mask = 1 << 0
)

// neighbourhood lists the neighbour offsets from the most significant
// bit to the least significant bit.
var neighbourhood = [8]struct {
	dx, dy int
	bit    Mask
}{
	{-1, -1, NW}, {0, -1, N}, {1, -1, NE},
	{-1, 0, W}, {1, 0, E},
	{-1, 1, SW}, {0, 1, S}, {1, 1, SE},
}

// Neighbours returns the occupancy mask of the eight tiles around (x, y).
// Neighbours outside the grid always count as free.
func (g *Grid) Neighbours(x, y int) Mask {
	var m Mask
	for _, n := range neighbourhood {
		if g.Occupied(x+n.dx, y+n.dy) {
			m |= n.bit
		}
	}
	return m
}

// Has reports whether all bits of other are set in m.
func (m Mask) Has(other Mask) bool {
	return m&other == other
}
