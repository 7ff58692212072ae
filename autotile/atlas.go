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

package autotile

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"seehuhn.de/go/lightmap/grid"
	"seehuhn.de/go/lightmap/pixel"
)

// ErrAtlasSize is returned for texture data which is not a 64×48 RGBA image.
var ErrAtlasSize = errors.New("autotile: atlas must be a 64x48 RGBA image")

// Atlas holds the texture pieces.  An Atlas is immutable.
type Atlas struct {
	pix *pixel.Buffer
}

// NewAtlas wraps decoded RGBA texture data.  The data must describe a
// 64×48 image with 4 channels.  The slice is copied.
func NewAtlas(pix []byte, width, height, channels int) (*Atlas, error) {
	if width != AtlasWidth || height != AtlasHeight || channels != 4 {
		return nil, fmt.Errorf("%w (got %dx%d with %d channels)",
			ErrAtlasSize, width, height, channels)
	}
	buf, err := pixel.FromBytes(pixel.RGBA, append([]byte(nil), pix...), width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAtlasSize, err)
	}
	return &Atlas{pix: buf}, nil
}

// DecodeAtlas converts a decoded image into an atlas.
// The image must use 8-bit RGBA samples, that is the colour model
// must be [color.NRGBAModel] or [color.RGBAModel].  Grey, paletted and
// 16-bit images are rejected with [ErrAtlasSize].  PNG files without an
// alpha channel decode to opaque RGBA images and are accepted.
func DecodeAtlas(img image.Image) (*Atlas, error) {
	b := img.Bounds()
	if b.Dx() != AtlasWidth || b.Dy() != AtlasHeight {
		return nil, fmt.Errorf("%w (got %dx%d)", ErrAtlasSize, b.Dx(), b.Dy())
	}
	if m := img.ColorModel(); m != color.NRGBAModel && m != color.RGBAModel {
		return nil, fmt.Errorf("%w (got %T)", ErrAtlasSize, img)
	}

	rgba, ok := img.(*image.NRGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) || rgba.Stride != 4*AtlasWidth {
		rgba = image.NewNRGBA(image.Rect(0, 0, AtlasWidth, AtlasHeight))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	return NewAtlas(rgba.Pix, AtlasWidth, AtlasHeight, 4)
}

// ReadAtlas decodes a PNG atlas.
func ReadAtlas(r io.Reader) (*Atlas, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode atlas: %w", err)
	}
	return DecodeAtlas(img)
}

// At returns the atlas pixel at c.
func (a *Atlas) At(c Coord) (pixel.Color, error) {
	return a.pix.Get(c.X, c.Y)
}

// Sample returns the texture colour of sub-tile pixel (px, py) of a tile
// with neighbour mask m.
func (a *Atlas) Sample(m grid.Mask, px, py int) pixel.Color {
	col, err := a.At(Resolve(m, px, py))
	if err != nil {
		// unreachable, all table entries lie inside the atlas
		panic(err)
	}
	return col
}

// Image returns a copy of the atlas.
func (a *Atlas) Image() *image.NRGBA {
	return a.pix.Image()
}
