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
	"errors"
	"flag"
	"math"
	"strings"
	"testing"

	"seehuhn.de/go/lightmap/pixel"
)

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want pixel.Color
		ok   bool
	}{
		{"#ffffff", pixel.White, true},
		{"#102030", pixel.Color{R: 0x10, G: 0x20, B: 0x30, A: 255}, true},
		{"#10203040", pixel.Color{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, true},
		{"#FFaa00", pixel.Color{R: 255, G: 0xaa, B: 0, A: 255}, true},
		{"ffffff", pixel.Color{}, false},
		{"#fff", pixel.Color{}, false},
		{"#gg0000", pixel.Color{}, false},
		{"#+1234567", pixel.Color{}, false},
	}
	for _, c := range cases {
		got, err := parseHexColor(c.in)
		if !c.ok {
			if !errors.Is(err, errHexColor) {
				t.Errorf("%q: got error %v", c.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
		} else if got != c.want {
			t.Errorf("%q: got %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDecodeLights(t *testing.T) {
	in := `[
		{"x": 16, "y": 8, "color": "#ff0000", "intensity": 10},
		{"x": 1.5, "y": 2.5, "color": [0, 0, 255], "intensity": 4, "direction": 90, "fov": 60},
		{"x": 0, "y": 0, "color": [1, 2, 3, 4], "intensity": 0}
	]`
	lights, err := decodeLights(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(lights) != 3 {
		t.Fatalf("got %d lights", len(lights))
	}

	l := lights[0]
	if l.Position.X != 16 || l.Position.Y != 8 || l.Intensity != 10 {
		t.Errorf("light 0: %+v", l)
	}
	if l.Color != (pixel.Color{R: 255, A: 255}) || l.FOV != 0 {
		t.Errorf("light 0: %+v", l)
	}

	l = lights[1]
	if l.Color != (pixel.Color{B: 255, A: 255}) {
		t.Errorf("light 1 color %v", l.Color)
	}
	if math.Abs(l.Direction-math.Pi/2) > 1e-12 || math.Abs(l.FOV-math.Pi/3) > 1e-12 {
		t.Errorf("light 1 angles %g %g", l.Direction, l.FOV)
	}

	if lights[2].Color != (pixel.Color{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("light 2 color %v", lights[2].Color)
	}
}

func TestDecodeLightsErrors(t *testing.T) {
	bad := map[string]string{
		"syntax":    `[{"x": 1,}]`,
		"unknown":   `[{"x": 1, "radius": 3}]`,
		"short":     `[{"color": [1, 2]}]`,
		"range":     `[{"color": [1, 2, 300]}]`,
		"hex":       `[{"color": "red"}]`,
		"negative":  `[{"intensity": -1}]`,
		"not array": `{"x": 1}`,
	}
	for name, in := range bad {
		if _, err := decodeLights(strings.NewReader(in)); err == nil {
			t.Errorf("%s: no error", name)
		}
	}
}

func TestLoadLightsEmpty(t *testing.T) {
	lights, err := loadLights("")
	if err != nil || lights != nil {
		t.Errorf("got %v, %v", lights, err)
	}
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("lightmap", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-map", "level.txt", "-scale", "2", "-rgba", "-o", "x.png"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Map != "level.txt" || cfg.Scale != 2 || !cfg.RGBA || cfg.Output != "x.png" {
		t.Errorf("got %+v", cfg)
	}
	if cfg.Texture != "texture-base.png" || cfg.Density != 20 || cfg.Upscale != 1 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}
