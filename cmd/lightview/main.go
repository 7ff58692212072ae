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

//go:build ebiten

// Command lightview shows a tile map in a window, lit by lights which can be
// placed with the mouse.  The newest light follows the cursor, a click fixes
// it in place.  "+" and "-" change its range, "c" removes all fixed lights
// and "q" quits.
package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"seehuhn.de/go/lightmap"
	"seehuhn.de/go/lightmap/autotile"
	"seehuhn.de/go/lightmap/grid"
	"seehuhn.de/go/lightmap/pixel"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	mapFile := flag.String("map", "map.txt", "occupancy map, '#' for walls")
	texture := flag.String("texture", "texture-base.png", "64x48 texture atlas (PNG)")
	scale := flag.Int("scale", 2, "simulation scale")
	zoom := flag.Int("zoom", 2, "window magnification")
	intensity := flag.Float64("intensity", 6, "initial light range in tiles")
	density := flag.Int("density", grid.DefaultDensity, "line of sight samples per tile")
	flag.Parse()

	g, err := grid.Load(*mapFile)
	if err != nil {
		log.Fatal(err)
	}
	f, err := os.Open(*texture)
	if err != nil {
		log.Fatal(err)
	}
	atlas, err := autotile.ReadAtlas(f)
	f.Close()
	if err != nil {
		log.Fatalf("%s: %v", *texture, err)
	}

	r, err := lightmap.NewRenderer(g, atlas)
	if err != nil {
		log.Fatal(err)
	}
	r.Scale = *scale
	r.Density = *density
	r.Layout = pixel.RGBA

	viewer := NewViewer(r, *intensity, *zoom)
	w, h := r.Size()

	ebiten.SetWindowTitle("lightmap: " + *mapFile)
	ebiten.SetWindowSize(w**zoom, h**zoom)

	if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
