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

//go:build ebiten

package main

import (
	"seehuhn.de/go/geom/vec"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"seehuhn.de/go/lightmap"
	"seehuhn.de/go/lightmap/autotile"
)

// Viewer adapts a Renderer to the ebiten.Game interface.
type Viewer struct {
	r    *lightmap.Renderer
	edit *editor
	img  *ebiten.Image
	zoom int
}

// NewViewer constructs a Viewer which shows the output of r magnified by
// zoom.
func NewViewer(r *lightmap.Renderer, intensity float64, zoom int) *Viewer {
	w, h := r.Size()
	return &Viewer{
		r:    r,
		edit: newEditor(intensity),
		img:  ebiten.NewImage(w, h),
		zoom: zoom,
	}
}

// Update handles input and re-renders the map when the lights changed.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	mx, my := ebiten.CursorPosition()
	pxPerTile := float64(autotile.TileSize * v.r.Scale * v.zoom)
	v.edit.move(vec.Vec2{X: float64(mx) / pxPerTile, Y: float64(my) / pxPerTile})

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		v.edit.drop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		v.edit.clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		v.edit.grow(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		v.edit.grow(-1)
	}

	if v.edit.changed() {
		out, err := v.r.Render(v.edit.lights)
		if err != nil {
			return err
		}
		v.img.WritePixels(out.Pix())
	}
	return nil
}

// Draw shows the last rendered image.
func (v *Viewer) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(v.zoom), float64(v.zoom))
	screen.DrawImage(v.img, op)
}

// Layout returns the logical screen size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := v.r.Size()
	return w * v.zoom, h * v.zoom
}
