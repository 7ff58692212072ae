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


// Command genpdf writes a vector preview of every test scene.
// Occupied tiles are drawn as grey squares and the reach of every light as
// an outline in the grey level of the light colour.
// Run from the lightmap module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/lightmap"
	"seehuhn.de/go/lightmap/grid"
	"seehuhn.de/go/lightmap/testcases"
)

const (
	previewDir = "testdata/preview"

	// tileSize is the size of a tile in PDF points
	tileSize = 16
)

func main() {
	if err := os.MkdirAll(previewDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			pdfPath := filepath.Join(previewDir, name+".pdf")
			if err := generatePDF(sc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(sc testcases.Scene, pdfPath string) error {
	g, err := grid.ParseString(sc.Map)
	if err != nil {
		return err
	}
	w := float64(g.Width() * tileSize)
	h := float64(g.Height() * tileSize)

	paper := &pdf.Rectangle{URx: w, URy: h}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// Map rows count from the top.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	page.SetFillColor(color.DeviceGray(0.5))
	for y := range g.Height() {
		for x := range g.Width() {
			if g.Occupied(x, y) {
				page.Rectangle(float64(x*tileSize), float64(y*tileSize), tileSize, tileSize)
			}
		}
	}
	if g.Count() > 0 {
		page.Fill()
	}

	page.SetLineWidth(1)
	for _, tl := range sc.Lights {
		l := lightmap.Light{
			Position:  tl.Position,
			Color:     tl.Color,
			Intensity: tl.Intensity,
			Direction: tl.Direction,
			FOV:       tl.FOV,
		}
		gray := float64(l.Color.Grayscale().R) / 255
		page.SetStrokeColor(color.DeviceGray(gray))
		page.SetFillColor(color.DeviceGray(gray))

		page.Rectangle(l.Position.X*tileSize-2, l.Position.Y*tileSize-2, 4, 4)
		page.Fill()

		for cmd, pts := range l.Outline(64) {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X*tileSize, pts[0].Y*tileSize)
			case path.CmdLineTo:
				page.LineTo(pts[0].X*tileSize, pts[0].Y*tileSize)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Stroke()
	}

	return page.Close()
}
