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

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// DefaultDensity is the default number of line of sight samples per tile
// unit.
const DefaultDensity = 20

// LineOfSight reports whether the segment from a to b avoids all occupied
// tiles.
//
// The test is approximate.  The segment is split into
// N = ceil(|b-a|) * density steps, and the points a + i*(b-a)/N for
// i = 0, ..., N-1 are tested.  The end point b itself is not tested.
// A segment which only grazes the corner of an occupied tile may be
// reported as visible.  With the default density the gap between samples
// is at most 1/20 of a tile.
func (g *Grid) LineOfSight(a, b vec.Vec2, density int) bool {
	if density < 1 {
		density = DefaultDensity
	}

	d := b.Sub(a)
	dist := d.Length()
	steps := int(math.Ceil(dist)) * density
	if steps == 0 {
		return true
	}

	n := float64(steps)
	step := vec.Vec2{X: d.X / n, Y: d.Y / n}
	for i := range steps {
		p := a.Add(step.Mul(float64(i)))
		if g.OccupiedAt(p) {
			return false
		}
	}
	return true
}
