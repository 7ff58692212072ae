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

// Package lightmap renders tile maps with point lights.
//
// Occupied tiles are drawn with textures from an [autotile.Atlas], chosen by
// the occupancy of the neighbouring tiles.  Free tiles are lit by point
// lights.  A light reaches a pixel if the pixel is closer than the light's
// range and if no occupied tile blocks the straight line between them.
//
// Each tile covers 8×8 pixels at simulation scale 1, and 8s×8s pixels at
// simulation scale s.
//
// The cost of a render is dominated by the line of sight tests, which take
// time proportional to lights × lit pixels × light range.
package lightmap

//go:generate go run ./testcases/export

import (
	"errors"
	"fmt"
	"runtime"

	"seehuhn.de/go/lightmap/autotile"
	"seehuhn.de/go/lightmap/grid"
	"seehuhn.de/go/lightmap/pixel"
)

// Renderer draws a fixed map with a fixed texture atlas.
//
// The exported fields can be changed between calls to Render.
// A Renderer never modifies the grid or the atlas, and Render may be
// called concurrently as long as the fields are not changed.
type Renderer struct {
	// Scale is the simulation scale.  Each tile is drawn as a square
	// of 8*Scale pixels.  Must be at least 1.
	Scale int

	// Density is the number of line of sight samples per tile unit.
	// Values below 1 select [grid.DefaultDensity].
	Density int

	// Layout selects the channel layout of rendered images.
	Layout pixel.Layout

	// Workers limits the number of image rows rendered in parallel.
	// Values below 1 mean one worker per CPU.  The output does not
	// depend on this setting.
	Workers int

	grid  *grid.Grid
	atlas *autotile.Atlas
}

// NewRenderer returns a Renderer for the given map and atlas, using
// scale 1, the default sampling density and RGB output.
func NewRenderer(g *grid.Grid, atlas *autotile.Atlas) (*Renderer, error) {
	if g == nil {
		return nil, errors.New("lightmap: missing grid")
	}
	if atlas == nil {
		return nil, errors.New("lightmap: missing atlas")
	}
	return &Renderer{
		Scale:   1,
		Density: grid.DefaultDensity,
		Layout:  pixel.RGB,
		grid:    g,
		atlas:   atlas,
	}, nil
}

// Grid returns the occupancy grid.
func (r *Renderer) Grid() *grid.Grid {
	return r.grid
}

// Size returns the dimensions of rendered images, in pixels.
func (r *Renderer) Size() (width, height int) {
	n := autotile.TileSize * max(r.Scale, 1)
	return r.grid.Width() * n, r.grid.Height() * n
}

func (r *Renderer) check() error {
	if r.Scale < 1 {
		return fmt.Errorf("lightmap: invalid scale %d", r.Scale)
	}
	if r.Layout != pixel.RGB && r.Layout != pixel.RGBA {
		return fmt.Errorf("lightmap: invalid layout %s", r.Layout)
	}
	return nil
}

func (r *Renderer) workers() int {
	if r.Workers < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return r.Workers
}

// Walls renders the texture layer.  Pixels of occupied tiles carry the
// atlas colour, including its alpha channel, and all other pixels are
// transparent.  The result uses the RGBA layout and has the size
// reported by [Renderer.Size].
func (r *Renderer) Walls() (*pixel.Buffer, error) {
	if err := r.check(); err != nil {
		return nil, err
	}

	const n = autotile.TileSize
	layer, err := pixel.NewBuffer(pixel.RGBA, r.grid.Width()*n, r.grid.Height()*n)
	if err != nil {
		return nil, err
	}
	layer.Fill(pixel.Transparent)

	for ty := range r.grid.Height() {
		for tx := range r.grid.Width() {
			if !r.grid.Occupied(tx, ty) {
				continue
			}
			m := r.grid.Neighbours(tx, ty)
			for dy := range n {
				for dx := range n {
					c := r.atlas.Sample(m, dx, dy)
					if err := layer.Set(tx*n+dx, ty*n+dy, c); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	// At scale s every texel covers an s×s block.
	return layer.Upscale(r.Scale)
}
