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

// Package testcases provides named scenes for rendering tests.
package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lightmap/pixel"
)

// Scene defines a single rendering test.
type Scene struct {
	Name   string  // lowercase a-z and _ only
	Map    string  // text map, '#' marks occupied tiles
	Scale  int     // simulation scale (zero means 1)
	Lights []Light // applied in order
}

// Light describes a light source of a scene.
type Light struct {
	Position  vec.Vec2    // tile units
	Color     pixel.Color // light colour
	Intensity float64     // range in tile units
	Direction float64     // cone direction in radians
	FOV       float64     // cone opening angle, zero for all directions
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// Some light colours.
var (
	white  = pixel.Color{R: 255, G: 255, B: 255, A: 255}
	warm   = pixel.Color{R: 255, G: 200, B: 120, A: 255}
	red    = pixel.Color{R: 255, G: 40, B: 40, A: 255}
	blue   = pixel.Color{R: 40, G: 80, B: 255, A: 255}
	dimmed = pixel.Color{R: 120, G: 120, B: 160, A: 255}
)
