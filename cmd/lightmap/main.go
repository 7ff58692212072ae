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


// Command lightmap renders a tile map with textured walls and point lights
// to a PNG image.
//
// Usage:
//
//	lightmap -map map.txt -texture texture-base.png -lights lights.json -o output.png
//
// The lights file contains a JSON array of objects like
//
//	{"x": 16, "y": 8, "color": "#ffffff", "intensity": 10, "direction": 0, "fov": 90}
//
// where positions and intensity are in tile units and angles in degrees.
// A field of view of 0 gives a light which shines in all directions.
package main

import (
	"flag"
	"fmt"
	"image/draw"
	"image/png"
	"log"
	"os"

	"seehuhn.de/go/lightmap"
	"seehuhn.de/go/lightmap/autotile"
	"seehuhn.de/go/lightmap/grid"
	"seehuhn.de/go/lightmap/pixel"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg := NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *Config) error {
	g, err := grid.Load(cfg.Map)
	if err != nil {
		return err
	}
	log.Printf("Map loaded: %s (%dx%d, %d walls)", cfg.Map, g.Width(), g.Height(), g.Count())

	atlas, err := loadAtlas(cfg.Texture)
	if err != nil {
		return err
	}

	lights, err := loadLights(cfg.Lights)
	if err != nil {
		return err
	}

	r, err := lightmap.NewRenderer(g, atlas)
	if err != nil {
		return err
	}
	r.Scale = cfg.Scale
	r.Density = cfg.Density
	r.Workers = cfg.Workers
	if cfg.RGBA {
		r.Layout = pixel.RGBA
	}

	log.Printf("Rendering %d lights...", len(lights))
	img, err := r.Render(lights)
	if err != nil {
		return err
	}
	if cfg.Upscale != 1 {
		img, err = img.Upscale(cfg.Upscale)
		if err != nil {
			return err
		}
	}

	out := img.Image()
	pixelsPerTile := autotile.TileSize * cfg.Scale * cfg.Upscale
	if cfg.Ranges > 0 {
		alpha := uint8(min(cfg.Ranges, 255))
		lightmap.DrawRanges(out, lights, float64(pixelsPerTile), alpha)
	}
	if cfg.Masks {
		lightmap.DrawMasks(out, g, pixelsPerTile)
	}

	if cfg.Preview {
		if err := writePreview(os.Stdout, out, terminalWidth(os.Stdout, 80)); err != nil {
			return err
		}
	}

	log.Printf("Saving to %s...", cfg.Output)
	if err := savePNG(cfg.Output, out); err != nil {
		return err
	}
	log.Println("Done!")
	return nil
}

func loadAtlas(fname string) (*autotile.Atlas, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	atlas, err := autotile.ReadAtlas(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return atlas, nil
}

func savePNG(fname string, img draw.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
