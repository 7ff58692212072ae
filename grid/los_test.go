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

package grid

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestLineOfSightZeroLength(t *testing.T) {
	g, err := ParseString("#.\n..\n")
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []vec.Vec2{{X: 0.5, Y: 0.5}, {X: 1.5, Y: 1.5}, {X: -3, Y: 7}} {
		if !g.LineOfSight(p, p, DefaultDensity) {
			t.Errorf("no line of sight from %v to itself", p)
		}
	}
}

func TestLineOfSightThroughCentre(t *testing.T) {
	g, err := ParseString(".....\n.....\n..#..\n.....\n.....\n")
	if err != nil {
		t.Fatal(err)
	}
	centre := vec.Vec2{X: 2.5, Y: 2.5}

	for k := range 24 {
		phi := 2 * math.Pi * float64(k) / 24
		d := vec.Vec2{X: math.Cos(phi), Y: math.Sin(phi)}.Mul(2.2)
		a := centre.Sub(d)
		b := centre.Add(d)
		if g.LineOfSight(a, b, DefaultDensity) {
			t.Errorf("segment %v→%v passes through an occupied tile", a, b)
		}
		if g.LineOfSight(b, a, DefaultDensity) {
			t.Errorf("segment %v→%v passes through an occupied tile", b, a)
		}
	}
}

func TestLineOfSight(t *testing.T) {
	g, err := ParseString("   \n # \n   \n")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		a, b vec.Vec2
		want bool
	}{
		{"row above", vec.Vec2{X: 0.5, Y: 0.5}, vec.Vec2{X: 2.5, Y: 0.5}, true},
		{"column left", vec.Vec2{X: 0.5, Y: 0.5}, vec.Vec2{X: 0.5, Y: 2.5}, true},
		{"through wall", vec.Vec2{X: 0.5, Y: 1.5}, vec.Vec2{X: 2.5, Y: 1.5}, false},
		{"diagonal", vec.Vec2{X: 0.5, Y: 0.5}, vec.Vec2{X: 2.5, Y: 2.5}, false},
		{"start inside", vec.Vec2{X: 1.5, Y: 1.5}, vec.Vec2{X: 0.5, Y: 0.5}, false},
		// the end point is not sampled
		{"end on wall", vec.Vec2{X: 0.5, Y: 1.5}, vec.Vec2{X: 1, Y: 1.5}, true},
		{"outside grid", vec.Vec2{X: -5, Y: -5}, vec.Vec2{X: 8, Y: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.LineOfSight(tt.a, tt.b, DefaultDensity); got != tt.want {
				t.Errorf("LineOfSight(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLineOfSightDensity(t *testing.T) {
	// Even a single sample per tile unit hits a tile which the segment
	// crosses through its centre.
	g, err := ParseString("....\n.#..\n....\n")
	if err != nil {
		t.Fatal(err)
	}
	a := vec.Vec2{X: 0.5, Y: 1.5}
	b := vec.Vec2{X: 3.5, Y: 1.5}
	for _, density := range []int{0, 1, 2, DefaultDensity, 100} {
		if g.LineOfSight(a, b, density) {
			t.Errorf("density %d: wall was skipped", density)
		}
	}
}

func BenchmarkLineOfSight(b *testing.B) {
	g, err := New(64, 64)
	if err != nil {
		b.Fatal(err)
	}
	from := vec.Vec2{X: 0.5, Y: 0.5}
	to := vec.Vec2{X: 63.5, Y: 40.5}

	b.ReportAllocs()
	for b.Loop() {
		g.LineOfSight(from, to, DefaultDensity)
	}
}
