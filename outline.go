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
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Outline returns a polygon enclosing the area the light can reach when no
// walls are present, in tile units.  Omnidirectional lights give a regular
// polygon with the given number of corners on the circle of radius
// Intensity.  Cones give a sector with the light position as its apex.
func (l *Light) Outline(segments int) path.Path {
	segments = max(segments, 3)
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if l.Intensity <= 0 {
			return
		}

		start, sweep := 0.0, 2*math.Pi
		omni := l.FOV <= 0 || l.FOV >= 2*math.Pi
		if !omni {
			start, sweep = l.Direction-l.FOV/2, l.FOV
		}

		n := segments
		if !omni {
			// the arc gets corners in proportion to its length
			n = max(int(math.Ceil(float64(segments)*sweep/(2*math.Pi))), 1)
		}

		cmd := path.CmdMoveTo
		if !omni {
			if !yield(cmd, []vec.Vec2{l.Position}) {
				return
			}
			cmd = path.CmdLineTo
			n++ // both ends of the arc
		}
		for i := range n {
			var phi float64
			if omni {
				phi = start + sweep*float64(i)/float64(n)
			} else {
				phi = start + sweep*float64(i)/float64(n-1)
			}
			p := vec.Vec2{
				X: l.Position.X + l.Intensity*math.Cos(phi),
				Y: l.Position.Y + l.Intensity*math.Sin(phi),
			}
			if !yield(cmd, []vec.Vec2{p}) {
				return
			}
			cmd = path.CmdLineTo
		}
		yield(path.CmdClose, nil)
	}
}

// DrawRanges shades the outline of every light on img, using the light
// colour with the given alpha.  Positions are converted to pixels by
// multiplying with pixelsPerTile.  Walls are ignored.
func DrawRanges(img draw.Image, lights []Light, pixelsPerTile float64, alpha uint8) {
	b := img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	for i := range lights {
		l := &lights[i]
		z.Reset(b.Dx(), b.Dy())
		for cmd, pts := range l.Outline(64) {
			switch cmd {
			case path.CmdMoveTo:
				p := pts[0].Mul(pixelsPerTile)
				z.MoveTo(float32(p.X), float32(p.Y))
			case path.CmdLineTo:
				p := pts[0].Mul(pixelsPerTile)
				z.LineTo(float32(p.X), float32(p.Y))
			case path.CmdClose:
				z.ClosePath()
			}
		}
		src := image.NewUniform(l.Color.WithAlpha(alpha).NRGBA())
		z.Draw(img, b, src, image.Point{})
	}
}
