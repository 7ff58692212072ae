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
	"fmt"

	"seehuhn.de/go/lightmap/autotile"
	"seehuhn.de/go/lightmap/grid"
	"seehuhn.de/go/lightmap/pixel"
	"seehuhn.de/go/lightmap/testcases"
)

// RenderScene renders a test scene with the given atlas.
// If atlas is nil, the procedural atlas from the testcases package is used.
func RenderScene(sc testcases.Scene, atlas *autotile.Atlas) (*pixel.Buffer, error) {
	if atlas == nil {
		atlas = testcases.Atlas()
	}

	g, err := grid.ParseString(sc.Map)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", sc.Name, err)
	}
	r, err := NewRenderer(g, atlas)
	if err != nil {
		return nil, err
	}
	if sc.Scale > 0 {
		r.Scale = sc.Scale
	}

	lights := make([]Light, len(sc.Lights))
	for i, l := range sc.Lights {
		lights[i] = Light{
			Position:  l.Position,
			Color:     l.Color,
			Intensity: l.Intensity,
			Direction: l.Direction,
			FOV:       l.FOV,
		}
	}
	return r.Render(lights)
}
