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
	"image"
	"image/color"
	"testing"

	"seehuhn.de/go/lightmap/grid"
)

func TestDrawMasks(t *testing.T) {
	g, err := grid.ParseString("# \n")
	if err != nil {
		t.Fatal(err)
	}
	black := color.NRGBA{A: 255}

	newImage := func() *image.NRGBA {
		img := image.NewNRGBA(image.Rect(0, 0, 64, 32))
		for i := range 64 * 32 {
			img.Pix[4*i+3] = 255
		}
		return img
	}
	countLit := func(img *image.NRGBA, r image.Rectangle) int {
		n := 0
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if img.NRGBAAt(x, y) != black {
					n++
				}
			}
		}
		return n
	}

	img := newImage()
	DrawMasks(img, g, 32)
	if countLit(img, image.Rect(0, 0, 32, 32)) == 0 {
		t.Error("no label on the wall tile")
	}
	if n := countLit(img, image.Rect(32, 0, 64, 32)); n != 0 {
		t.Errorf("%d pixels changed on the free tile", n)
	}
	if n := countLit(img, image.Rect(0, 24, 32, 32)); n != 0 {
		t.Errorf("%d pixels changed below the label", n)
	}

	small := newImage()
	DrawMasks(small, g, 8)
	if n := countLit(small, small.Bounds()); n != 0 {
		t.Errorf("%d pixels changed for small tiles", n)
	}
}
