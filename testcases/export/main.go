// Command export writes the reference images for the render tests, together
// with a JSON description of all scenes.
// Run from the lightmap module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"image/png"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"seehuhn.de/go/lightmap"
	"seehuhn.de/go/lightmap/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			if err := writeReference(sc, filepath.Join(refDir, name+".png")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			out.Scenes = append(out.Scenes, toJSON(name, sc))
		}
	}

	f, err := os.Create("testdata/scenes.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

func writeReference(sc testcases.Scene, fname string) error {
	img, err := lightmap.RenderScene(sc, nil)
	if err != nil {
		return err
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type jsonScene struct {
	Name   string      `json:"name"`
	Scale  int         `json:"scale,omitempty"`
	Map    []string    `json:"map"`
	Lights []jsonLight `json:"lights,omitempty"`
}

// jsonLight uses the format of the lightmap command, with angles in
// degrees.
type jsonLight struct {
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	Color     [4]uint8 `json:"color"`
	Intensity float64  `json:"intensity"`
	Direction float64  `json:"direction,omitempty"`
	FOV       float64  `json:"fov,omitempty"`
}

func toJSON(name string, sc testcases.Scene) jsonScene {
	js := jsonScene{
		Name:  name,
		Scale: sc.Scale,
		Map:   strings.Split(strings.TrimSuffix(sc.Map, "\n"), "\n"),
	}
	for _, l := range sc.Lights {
		js.Lights = append(js.Lights, jsonLight{
			X:         l.Position.X,
			Y:         l.Position.Y,
			Color:     [4]uint8{l.Color.R, l.Color.G, l.Color.B, l.Color.A},
			Intensity: l.Intensity,
			Direction: l.Direction * 180 / math.Pi,
			FOV:       l.FOV * 180 / math.Pi,
		})
	}
	return js
}
