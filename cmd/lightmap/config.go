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

import "flag"

// Config holds the command-line parameters.
type Config struct {
	Map     string
	Texture string
	Lights  string
	Output  string

	Scale   int
	Upscale int
	Density int
	Workers int
	RGBA    bool

	// Masks labels every wall with its neighbour mask.
	Masks bool

	// Preview prints the result to the terminal.
	Preview bool

	// Ranges is the alpha used to shade the reach of each light on top
	// of the result, zero disables the overlay.
	Ranges int
}

// NewConfig returns a Config populated with the default file names and
// a simulation scale of 8.
func NewConfig() *Config {
	return &Config{
		Map:     "map.txt",
		Texture: "texture-base.png",
		Output:  "output.png",
		Scale:   8,
		Upscale: 1,
		Density: 20,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Map, "map", c.Map, "occupancy map, one text line per row, '#' for walls")
	fs.StringVar(&c.Texture, "texture", c.Texture, "64x48 texture atlas (PNG)")
	fs.StringVar(&c.Lights, "lights", c.Lights, "JSON file with the light sources")
	fs.StringVar(&c.Output, "o", c.Output, "output file (PNG)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "simulation scale, pixels per texel")
	fs.IntVar(&c.Upscale, "upscale", c.Upscale, "nearest neighbour upscale of the result")
	fs.IntVar(&c.Density, "density", c.Density, "line of sight samples per tile")
	fs.IntVar(&c.Workers, "workers", c.Workers, "rows rendered in parallel, 0 for one per CPU")
	fs.BoolVar(&c.RGBA, "rgba", c.RGBA, "render with an alpha channel")
	fs.BoolVar(&c.Masks, "masks", c.Masks, "label walls with their neighbour mask")
	fs.BoolVar(&c.Preview, "preview", c.Preview, "print the result to the terminal")
	fs.IntVar(&c.Ranges, "ranges", c.Ranges, "shade the reach of every light with this alpha (0-255)")
}
