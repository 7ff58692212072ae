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

package pixel

import (
	"errors"
	"fmt"
	"image"
	"iter"
)

// Layout describes how many channels a [Buffer] stores per pixel.
type Layout int

// Supported layouts.
const (
	RGB  Layout = 3 // red, green, blue
	RGBA Layout = 4 // red, green, blue, straight alpha
)

// Channels returns the number of bytes per pixel.
func (l Layout) Channels() int {
	return int(l)
}

func (l Layout) String() string {
	switch l {
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

func (l Layout) valid() bool {
	return l == RGB || l == RGBA
}

var (
	// ErrZeroSize is returned when a buffer would have no pixels.
	ErrZeroSize = errors.New("pixel: width and height must be positive")

	// ErrSizeMismatch is returned when a byte slice does not match the
	// declared buffer dimensions.
	ErrSizeMismatch = errors.New("pixel: buffer length does not match dimensions")

	// ErrDimensionMismatch is returned when two buffers must have equal
	// dimensions but do not.
	ErrDimensionMismatch = errors.New("pixel: buffer dimensions differ")

	// ErrOutOfBounds is wrapped by every [IndexError].
	ErrOutOfBounds = errors.New("pixel: index out of bounds")

	errLayout = errors.New("pixel: unsupported layout")
)

// IndexError reports an access outside the buffer.
type IndexError struct {
	X, Y          int
	Width, Height int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("pixel: (%d,%d) outside %dx%d buffer", e.X, e.Y, e.Width, e.Height)
}

func (e *IndexError) Unwrap() error {
	return ErrOutOfBounds
}

// Buffer is a row-major grid of pixels stored in a flat byte slice.
// Pixel (x, y) starts at byte (y*width + x) * channels.
//
// Different goroutines may call Set concurrently as long as they write to
// disjoint pixels.
type Buffer struct {
	layout Layout
	width  int
	height int
	pix    []byte
}

// NewBuffer allocates a black buffer.  If the layout has an alpha channel,
// every pixel starts fully opaque.
func NewBuffer(layout Layout, width, height int) (*Buffer, error) {
	if !layout.valid() {
		return nil, errLayout
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w (got %dx%d)", ErrZeroSize, width, height)
	}

	n := layout.Channels()
	pix := make([]byte, width*height*n)
	if layout == RGBA {
		for i := 3; i < len(pix); i += 4 {
			pix[i] = 255
		}
	}
	return &Buffer{layout: layout, width: width, height: height, pix: pix}, nil
}

// FromBytes wraps an existing byte slice without copying.
// The slice length must be exactly width*height*channels.
func FromBytes(layout Layout, pix []byte, width, height int) (*Buffer, error) {
	if !layout.valid() {
		return nil, errLayout
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w (got %dx%d)", ErrZeroSize, width, height)
	}
	want := width * height * layout.Channels()
	if len(pix) != want {
		return nil, fmt.Errorf("%w: have %d bytes, %dx%d %s needs %d",
			ErrSizeMismatch, len(pix), width, height, layout, want)
	}
	return &Buffer{layout: layout, width: width, height: height, pix: pix}, nil
}

// Width returns the number of pixel columns.
func (b *Buffer) Width() int { return b.width }

// Height returns the number of pixel rows.
func (b *Buffer) Height() int { return b.height }

// Layout returns the channel layout.
func (b *Buffer) Layout() Layout { return b.layout }

// Pix returns the underlying bytes.  The slice aliases the buffer.
func (b *Buffer) Pix() []byte { return b.pix }

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	c := *b
	c.pix = append([]byte(nil), b.pix...)
	return &c
}

// offset returns the byte offset of pixel (x, y).
func (b *Buffer) offset(x, y int) (int, error) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0, &IndexError{X: x, Y: y, Width: b.width, Height: b.height}
	}
	return (y*b.width + x) * b.layout.Channels(), nil
}

// decode reads the pixel starting at byte offset i.
// RGB pixels are reported as opaque.
func (b *Buffer) decode(i int) Color {
	if b.layout == RGB {
		p := b.pix[i : i+3 : i+3]
		return Color{R: p[0], G: p[1], B: p[2], A: 255}
	}
	p := b.pix[i : i+4 : i+4]
	return Color{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// encode writes c at byte offset i.  RGB buffers drop the alpha channel.
func (b *Buffer) encode(i int, c Color) {
	if b.layout == RGB {
		p := b.pix[i : i+3 : i+3]
		p[0], p[1], p[2] = c.R, c.G, c.B
		return
	}
	p := b.pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

// Get returns the colour of pixel (x, y).
func (b *Buffer) Get(x, y int) (Color, error) {
	i, err := b.offset(x, y)
	if err != nil {
		return Color{}, err
	}
	return b.decode(i), nil
}

// Set changes the colour of pixel (x, y).
func (b *Buffer) Set(x, y int, c Color) error {
	i, err := b.offset(x, y)
	if err != nil {
		return err
	}
	b.encode(i, c)
	return nil
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c Color) {
	n := b.layout.Channels()
	for i := 0; i < len(b.pix); i += n {
		b.encode(i, c)
	}
}

// All iterates over the pixels in row-major order.
// The sequence can be ranged over any number of times.
func (b *Buffer) All() iter.Seq[Color] {
	return func(yield func(Color) bool) {
		n := b.layout.Channels()
		for i := 0; i < len(b.pix); i += n {
			if !yield(b.decode(i)) {
				return
			}
		}
	}
}

// Upscale returns a new buffer where every pixel of b is replaced by a
// factor×factor block of the same colour.  The layout is preserved.
func (b *Buffer) Upscale(factor int) (*Buffer, error) {
	if factor < 1 {
		return nil, fmt.Errorf("pixel: upscale factor %d must be at least 1", factor)
	}
	if factor == 1 {
		return b.Clone(), nil
	}

	n := b.layout.Channels()
	w := b.width * factor
	res := &Buffer{
		layout: b.layout,
		width:  w,
		height: b.height * factor,
		pix:    make([]byte, len(b.pix)*factor*factor),
	}

	rowBytes := w * n
	for y := range b.height {
		// Build the first output row of this block ...
		src := b.pix[y*b.width*n : (y+1)*b.width*n]
		dst := res.pix[y*factor*rowBytes : (y*factor+1)*rowBytes]
		for x := range b.width {
			p := src[x*n : (x+1)*n]
			for k := range factor {
				copy(dst[(x*factor+k)*n:], p)
			}
		}

		// ... and replicate it for the remaining rows.
		for k := 1; k < factor; k++ {
			copy(res.pix[(y*factor+k)*rowBytes:], dst)
		}
	}
	return res, nil
}

// Merge composites overlay onto b in place.  For every pixel the overlay
// alpha a gives the blend factor a/255, and the new colour is
// overlay.Blend(base, a/255).  The alpha channel of b, if any, is kept.
// An RGB overlay counts as fully opaque.
func (b *Buffer) Merge(overlay *Buffer) error {
	if overlay.width != b.width || overlay.height != b.height {
		return fmt.Errorf("%w: base %dx%d, overlay %dx%d", ErrDimensionMismatch,
			b.width, b.height, overlay.width, overlay.height)
	}

	nb := b.layout.Channels()
	no := overlay.layout.Channels()
	for i := range b.width * b.height {
		top := overlay.decode(i * no)
		switch top.A {
		case 0:
			continue
		case 255:
			// fully opaque overlays replace the colour
		default:
			base := b.decode(i * nb)
			top = top.Blend(base, float64(top.A)/255)
		}
		top.A = b.decode(i * nb).A
		b.encode(i*nb, top)
	}
	return nil
}

// Image copies the buffer into a new image, for use with the encoders
// of the standard library.  RGB buffers become opaque images.
func (b *Buffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	if b.layout == RGBA {
		copy(img.Pix, b.pix)
		return img
	}
	for i := range b.width * b.height {
		copy(img.Pix[i*4:i*4+3], b.pix[i*3:i*3+3])
		img.Pix[i*4+3] = 255
	}
	return img
}

// FromImage copies an image into a new buffer with the given layout.
func FromImage(layout Layout, img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	b, err := NewBuffer(layout, bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	for y := range b.height {
		for x := range b.width {
			c := FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			b.encode((y*b.width+x)*b.layout.Channels(), c)
		}
	}
	return b, nil
}
