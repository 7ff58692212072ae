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
	"testing"

	"golang.org/x/image/draw"
)

func TestNewBuffer(t *testing.T) {
	for _, layout := range []Layout{RGB, RGBA} {
		b, err := NewBuffer(layout, 5, 3)
		if err != nil {
			t.Fatal(err)
		}
		if len(b.Pix()) != 5*3*layout.Channels() {
			t.Errorf("%s: buffer length %d", layout, len(b.Pix()))
		}
		for c := range b.All() {
			if c != Black {
				t.Fatalf("%s: new pixel is %v, want opaque black", layout, c)
			}
		}
	}

	for _, size := range [][2]int{{0, 1}, {1, 0}, {-1, 4}} {
		_, err := NewBuffer(RGB, size[0], size[1])
		if !errors.Is(err, ErrZeroSize) {
			t.Errorf("NewBuffer(%d, %d): got %v, want ErrZeroSize", size[0], size[1], err)
		}
	}
}

func TestFromBytes(t *testing.T) {
	pix := make([]byte, 2*2*4)
	pix[4], pix[5], pix[6], pix[7] = 1, 2, 3, 4

	b, err := FromBytes(RGBA, pix, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	c, err := b.Get(1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if c != (Color{1, 2, 3, 4}) {
		t.Errorf("Get(1, 0) = %v", c)
	}

	_, err = FromBytes(RGB, pix, 2, 2)
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("RGB view of RGBA bytes: got %v, want ErrSizeMismatch", err)
	}
	_, err = FromBytes(RGBA, pix[:15], 2, 2)
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("short slice: got %v, want ErrSizeMismatch", err)
	}
}

func TestGetSet(t *testing.T) {
	b, err := NewBuffer(RGB, 4, 3)
	if err != nil {
		t.Fatal(err)
	}

	c := Color{9, 8, 7, 6}
	if err := b.Set(3, 2, c); err != nil {
		t.Fatal(err)
	}
	got, err := b.Get(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	// RGB buffers have no alpha to store
	if got != c.WithAlpha(255) {
		t.Errorf("Get(3, 2) = %v", got)
	}
	if i := (2*4 + 3) * 3; b.Pix()[i] != 9 || b.Pix()[i+1] != 8 || b.Pix()[i+2] != 7 {
		t.Errorf("pixel stored at wrong offset: %v", b.Pix())
	}

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}} {
		err := b.Set(p[0], p[1], c)
		var idxErr *IndexError
		if !errors.As(err, &idxErr) {
			t.Errorf("Set(%d, %d): got %v, want IndexError", p[0], p[1], err)
			continue
		}
		if idxErr.X != p[0] || idxErr.Y != p[1] {
			t.Errorf("IndexError reports (%d,%d)", idxErr.X, idxErr.Y)
		}
		if _, err := b.Get(p[0], p[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%d, %d): got %v, want ErrOutOfBounds", p[0], p[1], err)
		}
	}
}

func TestAllRestartable(t *testing.T) {
	b, err := NewBuffer(RGBA, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	for y := range 2 {
		for x := range 3 {
			_ = b.Set(x, y, Color{uint8(x), uint8(y), 0, 255})
		}
	}

	for pass := range 2 {
		i := 0
		for c := range b.All() {
			want := Color{uint8(i % 3), uint8(i / 3), 0, 255}
			if c != want {
				t.Errorf("pass %d, pixel %d: got %v, want %v", pass, i, c, want)
			}
			i++
		}
		if i != 6 {
			t.Errorf("pass %d visited %d pixels", pass, i)
		}
	}

	// early exit
	n := 0
	for range b.All() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("early exit visited %d pixels", n)
	}
}

func TestUpscale(t *testing.T) {
	for _, layout := range []Layout{RGB, RGBA} {
		for _, k := range []int{1, 2, 3, 8} {
			t.Run(fmt.Sprintf("%s_%d", layout, k), func(t *testing.T) {
				src := testPattern(t, layout, 5, 3)
				dst, err := src.Upscale(k)
				if err != nil {
					t.Fatal(err)
				}
				if dst.Width() != 5*k || dst.Height() != 3*k || dst.Layout() != layout {
					t.Fatalf("got %dx%d %s", dst.Width(), dst.Height(), dst.Layout())
				}
				if len(dst.Pix()) != len(src.Pix())*k*k {
					t.Fatalf("length %d, want %d", len(dst.Pix()), len(src.Pix())*k*k)
				}
				for y := range dst.Height() {
					for x := range dst.Width() {
						got, _ := dst.Get(x, y)
						want, _ := src.Get(x/k, y/k)
						if got != want {
							t.Fatalf("(%d,%d) = %v, want %v", x, y, got, want)
						}
					}
				}
			})
		}
	}

	src := testPattern(t, RGB, 2, 2)
	if _, err := src.Upscale(0); err == nil {
		t.Error("Upscale(0) succeeded")
	}
}

// TestUpscaleMatchesDraw compares Upscale with the nearest neighbour
// scaler from golang.org/x/image/draw.  The pattern is opaque, so that
// the premultiplied arithmetic inside draw is exact.
func TestUpscaleMatchesDraw(t *testing.T) {
	src := testPattern(t, RGB, 7, 4)
	const k = 4

	up, err := src.Upscale(k)
	if err != nil {
		t.Fatal(err)
	}

	ref := image.NewNRGBA(image.Rect(0, 0, 7*k, 4*k))
	draw.NearestNeighbor.Scale(ref, ref.Bounds(), src.Image(), image.Rect(0, 0, 7, 4), draw.Src, nil)

	got := up.Image()
	for i := range ref.Pix {
		if got.Pix[i] != ref.Pix[i] {
			t.Fatalf("byte %d: got %d, x/image/draw has %d", i, got.Pix[i], ref.Pix[i])
		}
	}
}

func TestMerge(t *testing.T) {
	base := testPattern(t, RGB, 4, 4)
	orig := base.Clone()

	// a fully transparent overlay changes nothing
	empty, err := NewBuffer(RGBA, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	empty.Fill(Color{255, 255, 255, 0})
	if err := base.Merge(empty); err != nil {
		t.Fatal(err)
	}
	for i := range base.Pix() {
		if base.Pix()[i] != orig.Pix()[i] {
			t.Fatalf("zero alpha merge changed byte %d", i)
		}
	}

	// opaque pixels replace, translucent pixels blend
	overlay, _ := NewBuffer(RGBA, 4, 4)
	overlay.Fill(Transparent)
	_ = overlay.Set(0, 0, Color{10, 20, 30, 255})
	_ = overlay.Set(1, 0, Color{255, 255, 255, 51})
	if err := base.Merge(overlay); err != nil {
		t.Fatal(err)
	}
	if got, _ := base.Get(0, 0); got != (Color{10, 20, 30, 255}) {
		t.Errorf("opaque merge: %v", got)
	}
	below, _ := orig.Get(1, 0)
	want := Color{255, 255, 255, 51}.Blend(below, 0.2).WithAlpha(255)
	if got, _ := base.Get(1, 0); got != want {
		t.Errorf("translucent merge: got %v, want %v", got, want)
	}
	got, _ := base.Get(2, 0)
	if prev, _ := orig.Get(2, 0); got != prev {
		t.Errorf("untouched pixel changed from %v to %v", prev, got)
	}

	// the alpha channel of an RGBA base is kept
	rgbaBase, _ := NewBuffer(RGBA, 4, 4)
	rgbaBase.Fill(Color{0, 0, 0, 77})
	if err := rgbaBase.Merge(overlay); err != nil {
		t.Fatal(err)
	}
	if got, _ := rgbaBase.Get(0, 0); got != (Color{10, 20, 30, 77}) {
		t.Errorf("RGBA base merge: %v", got)
	}

	small := testPattern(t, RGBA, 3, 4)
	if err := base.Merge(small); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("size mismatch: got %v, want ErrDimensionMismatch", err)
	}
}

func TestImage(t *testing.T) {
	b := testPattern(t, RGB, 3, 2)
	img := b.Image()
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("bounds %v", img.Bounds())
	}
	back, err := FromImage(RGB, img)
	if err != nil {
		t.Fatal(err)
	}
	for i := range b.Pix() {
		if b.Pix()[i] != back.Pix()[i] {
			t.Fatalf("byte %d differs after image round trip", i)
		}
	}
	if img.Pix[3] != 255 {
		t.Errorf("RGB image alpha %d", img.Pix[3])
	}
}

// testPattern returns a buffer where every pixel has a distinct colour.
func testPattern(t *testing.T, layout Layout, w, h int) *Buffer {
	t.Helper()
	b, err := NewBuffer(layout, w, h)
	if err != nil {
		t.Fatal(err)
	}
	for y := range h {
		for x := range w {
			c := Color{uint8(17 * x), uint8(31 * y), uint8(x*y + 5), uint8(255 - x - y)}
			if err := b.Set(x, y, c); err != nil {
				t.Fatal(err)
			}
		}
	}
	return b
}
