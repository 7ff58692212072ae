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
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/lightmap/grid"
)

// DrawMasks writes the neighbour mask of every occupied tile onto img, as
// two hex digits in the top left corner of the tile.  This shows which
// atlas piece was chosen for each wall.  Nothing is drawn if the tiles
// are too small to hold a label.
func DrawMasks(img draw.Image, g *grid.Grid, pixelsPerTile int) {
	face := inconsolata.Regular8x16
	if pixelsPerTile < 2*8+2 {
		return
	}

	shadow := image.NewUniform(color.Black)
	yellow := image.NewUniform(color.RGBA{R: 255, G: 255, A: 255})
	ascent := face.Metrics().Ascent.Ceil()

	b := img.Bounds()
	for ty := range g.Height() {
		for tx := range g.Width() {
			if !g.Occupied(tx, ty) {
				continue
			}
			x := b.Min.X + tx*pixelsPerTile + 2
			y := b.Min.Y + ty*pixelsPerTile + 2 + ascent
			label := fmt.Sprintf("%02X", uint8(g.Neighbours(tx, ty)))

			(&font.Drawer{
				Dst:  img,
				Src:  shadow,
				Face: face,
				Dot:  fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(y + 1)},
			}).DrawString(label)
			(&font.Drawer{
				Dst:  img,
				Src:  yellow,
				Face: face,
				Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
			}).DrawString(label)
		}
	}
}
