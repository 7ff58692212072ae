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

package lightmap

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lightmap/pixel"
)

// Light is a point light source.  Positions are in tile units.
type Light struct {
	// Position is the location of the light.  The centre of tile (i, j)
	// is at (i+0.5, j+0.5).
	Position vec.Vec2

	// Color is blended over the lit pixels.
	Color pixel.Color

	// Intensity is the range of the light, in tile units.  The light
	// contributes with weight 1-d/Intensity at distance d < Intensity.
	Intensity float64

	// Direction is the angle of the centre of the light cone, in radians,
	// measured from the positive x-axis towards the positive y-axis.
	// Only used if FOV is set.
	Direction float64

	// FOV is the opening angle of the light cone, in radians.
	// Zero, or any value of at least 2π, gives a light which shines in
	// all directions.
	FOV float64
}

// Bounds returns the square in tile space outside of which the light has
// no effect.
func (l *Light) Bounds() rect.Rect {
	r := max(l.Intensity, 0)
	return rect.Rect{
		LLx: l.Position.X - r,
		LLy: l.Position.Y - r,
		URx: l.Position.X + r,
		URy: l.Position.Y + r,
	}
}

// inCone reports whether p lies inside the light cone.
func (l *Light) inCone(p vec.Vec2) bool {
	if l.FOV <= 0 || l.FOV >= 2*math.Pi {
		return true
	}
	d := p.Sub(l.Position)
	if d.X == 0 && d.Y == 0 {
		return true
	}
	delta := math.Remainder(math.Atan2(d.Y, d.X)-l.Direction, 2*math.Pi)
	return math.Abs(delta) <= l.FOV/2
}

// activeLight is a light together with its culling rectangle.
type activeLight struct {
	*Light
	box rect.Rect
}

// coversRow reports whether any pixel in the row at tile-space height y
// can be reached by the light.
func (a *activeLight) coversRow(y float64) bool {
	return y > a.box.LLy && y < a.box.URy
}

// covers reports whether p lies in the open culling rectangle.  Every
// point at distance less than Intensity from the light does.
func (a *activeLight) covers(p vec.Vec2) bool {
	return p.X > a.box.LLx && p.X < a.box.URx && p.Y > a.box.LLy && p.Y < a.box.URy
}
