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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lightmap"
	"seehuhn.de/go/lightmap/pixel"
)

// lightSpec is the JSON form of a light.  Angles are given in degrees.
type lightSpec struct {
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Color     jsonColor `json:"color"`
	Intensity float64   `json:"intensity"`
	Direction float64   `json:"direction"`
	FOV       float64   `json:"fov"`
}

// jsonColor accepts either "#rrggbb", "#rrggbbaa" or an array [r, g, b]
// or [r, g, b, a].  A missing alpha value means opaque.
type jsonColor pixel.Color

func (c *jsonColor) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		col, err := parseHexColor(s)
		if err != nil {
			return err
		}
		*c = jsonColor(col)
		return nil
	}

	var v []int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	for _, x := range v {
		if x < 0 || x > 255 {
			return fmt.Errorf("color: component %d out of range", x)
		}
	}
	switch len(v) {
	case 3:
		*c = jsonColor{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2]), A: 255}
	case 4:
		*c = jsonColor{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2]), A: uint8(v[3])}
	default:
		return fmt.Errorf("color: need 3 or 4 components, got %d", len(v))
	}
	return nil
}

var errHexColor = errors.New("invalid hex color")

func parseHexColor(s string) (pixel.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return pixel.Color{}, fmt.Errorf("%w %q", errHexColor, s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return pixel.Color{}, fmt.Errorf("%w %q", errHexColor, s)
	}
	return pixel.Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// decodeLights reads a JSON array of lights.
func decodeLights(r io.Reader) ([]lightmap.Light, error) {
	var specs []lightSpec
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&specs); err != nil {
		return nil, err
	}

	lights := make([]lightmap.Light, len(specs))
	for i, s := range specs {
		if s.Intensity < 0 {
			return nil, fmt.Errorf("light %d: negative intensity %g", i, s.Intensity)
		}
		lights[i] = lightmap.Light{
			Position:  vec.Vec2{X: s.X, Y: s.Y},
			Color:     pixel.Color(s.Color),
			Intensity: s.Intensity,
			Direction: s.Direction * math.Pi / 180,
			FOV:       s.FOV * math.Pi / 180,
		}
	}
	return lights, nil
}

// loadLights reads the lights from the named file.  An empty name gives
// no lights.
func loadLights(fname string) ([]lightmap.Light, error) {
	if fname == "" {
		return nil, nil
	}
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lights, err := decodeLights(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return lights, nil
}
