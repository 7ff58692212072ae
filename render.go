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

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lightmap/autotile"
	"seehuhn.de/go/lightmap/pixel"
)

// Render draws the map lit by the given lights.
//
// The image starts out black.  The wall layer from [Renderer.Walls] is
// composited on top, and then every pixel outside the occupied tiles is
// lit.  For each light in turn, if the pixel is in range and the light can
// see the pixel, the light colour is blended over the current pixel colour
// with factor 1-d/Intensity.  The order of the lights matters where their
// ranges overlap.
func (r *Renderer) Render(lights []Light) (*pixel.Buffer, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	w, h := r.Size()

	out, err := pixel.NewBuffer(r.Layout, w, h)
	if err != nil {
		return nil, err
	}
	walls, err := r.Walls()
	if err != nil {
		return nil, err
	}
	if err := out.Merge(walls); err != nil {
		return nil, err
	}

	active := make([]activeLight, len(lights))
	for i := range lights {
		active[i] = activeLight{Light: &lights[i], box: lights[i].Bounds()}
	}

	// Rows only read the grid and the lights, and write disjoint pixels.
	var g errgroup.Group
	g.SetLimit(r.workers())
	for y := range h {
		g.Go(func() error {
			return r.renderRow(out, y, active)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("lightmap: render: %w", err)
	}
	return out, nil
}

// renderRow applies the lights to the free pixels of image row y.
func (r *Renderer) renderRow(out *pixel.Buffer, y int, lights []activeLight) error {
	scale := float64(r.Scale)
	ty := float64(y) / autotile.TileSize / scale

	// Only consider the lights which reach this row.
	var row []*activeLight
	for i := range lights {
		if lights[i].coversRow(ty) {
			row = append(row, &lights[i])
		}
	}
	if len(row) == 0 {
		return nil
	}

	for x := range out.Width() {
		p := vec.Vec2{X: float64(x) / autotile.TileSize / scale, Y: ty}
		if r.grid.OccupiedAt(p) {
			continue
		}

		c, err := out.Get(x, y)
		if err != nil {
			return err
		}
		lit := false
		for _, l := range row {
			if !l.covers(p) {
				continue
			}
			dist := l.Position.Sub(p).Length()
			if dist >= l.Intensity || !l.inCone(p) {
				continue
			}
			if !r.grid.LineOfSight(l.Position, p, r.Density) {
				continue
			}
			c = l.Color.Blend(c, 1-dist/l.Intensity)
			lit = true
		}
		if !lit {
			continue
		}
		if err := out.Set(x, y, c); err != nil {
			return err
		}
	}
	return nil
}
