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
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/lightmap/testcases"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := NewConfig()
	cfg.Map = filepath.Join(dir, "map.txt")
	cfg.Texture = filepath.Join(dir, "texture.png")
	cfg.Lights = filepath.Join(dir, "lights.json")
	cfg.Output = filepath.Join(dir, "out.png")
	cfg.Scale = 2
	cfg.Upscale = 3
	cfg.Ranges = 32
	cfg.Masks = true

	writeFile(t, cfg.Map, "####\n#  #\n####\n")
	writeFile(t, cfg.Lights, `[{"x": 1.5, "y": 1.5, "color": "#ffcc88", "intensity": 3}]`)

	f, err := os.Create(cfg.Texture)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, testcases.Atlas().Image()); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	if err := run(cfg); err != nil {
		t.Fatal(err)
	}

	f, err = os.Open(cfg.Output)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 4*8*2*3 || b.Dy() != 3*8*2*3 {
		t.Errorf("output is %dx%d", b.Dx(), b.Dy())
	}
}

func TestRunMissingMap(t *testing.T) {
	cfg := NewConfig()
	cfg.Map = filepath.Join(t.TempDir(), "missing.txt")
	if err := run(cfg); err == nil {
		t.Error("missing map accepted")
	}
}

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
