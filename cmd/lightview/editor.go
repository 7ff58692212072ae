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

package main

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lightmap"
	"seehuhn.de/go/lightmap/pixel"
)

// palette holds the colours given to newly placed lights, in turn.
var palette = []pixel.Color{
	{R: 255, G: 255, B: 255, A: 255},
	{R: 255, G: 190, B: 110, A: 255},
	{R: 120, G: 170, B: 255, A: 255},
	{R: 255, G: 90, B: 90, A: 255},
	{R: 140, G: 255, B: 140, A: 255},
}

// editor keeps the lights of the viewer.  The last light follows the
// cursor, the others are fixed.
type editor struct {
	lights    []lightmap.Light
	intensity float64
	next      int
	dirty     bool
}

func newEditor(intensity float64) *editor {
	e := &editor{intensity: intensity, dirty: true}
	e.lights = []lightmap.Light{e.newLight(vec.Vec2{})}
	return e
}

func (e *editor) newLight(p vec.Vec2) lightmap.Light {
	c := palette[e.next%len(palette)]
	e.next++
	return lightmap.Light{Position: p, Color: c, Intensity: e.intensity}
}

func (e *editor) cursor() *lightmap.Light {
	return &e.lights[len(e.lights)-1]
}

// move places the cursor light at p.
func (e *editor) move(p vec.Vec2) {
	if l := e.cursor(); l.Position != p {
		l.Position = p
		e.dirty = true
	}
}

// drop fixes the cursor light at its current position and starts a new one.
func (e *editor) drop() {
	p := e.cursor().Position
	e.lights = append(e.lights, e.newLight(p))
	e.dirty = true
}

// clear removes all fixed lights.
func (e *editor) clear() {
	if len(e.lights) > 1 {
		e.lights = append(e.lights[:0], *e.cursor())
		e.dirty = true
	}
}

// grow changes the range of the cursor light by delta, keeping it
// positive.
func (e *editor) grow(delta float64) {
	l := e.cursor()
	l.Intensity = max(l.Intensity+delta, 0.5)
	e.intensity = l.Intensity
	e.dirty = true
}

// changed reports whether the lights were modified since the last call.
func (e *editor) changed() bool {
	d := e.dirty
	e.dirty = false
	return d
}
