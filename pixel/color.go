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

// Package pixel implements 8-bit colour values and flat pixel buffers.
//
// Two interpolation conventions are used in this package, and they point in
// opposite directions:
//
//   - [Color.Blend] with factor f computes c*f + other*(1-f).  Factor 1
//     returns the receiver, factor 0 returns the argument.
//   - [Color.Interpolate] with parameter t computes c*(1-t) + other*t.
//     Parameter 0 returns the receiver, parameter 1 returns the argument.
//
// Interpolate is defined in terms of Blend, so both produce bit-identical
// results for mirrored arguments.
package pixel

import (
	"image/color"
)

// Color is a straight (non-premultiplied) 8-bit RGBA colour.
type Color struct {
	R, G, B, A uint8
}

// Color3 is an 8-bit RGB colour without an alpha channel.
type Color3 struct {
	R, G, B uint8
}

// Frequently used colours.
var (
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Transparent = Color{}
)

// Blend mixes c with other.  The result is c*factor + other*(1-factor),
// computed per channel including alpha.  The factor is clamped to [0, 1]
// and each channel is truncated towards zero.
func (c Color) Blend(other Color, factor float64) Color {
	f := clampUnit(factor)
	return Color{
		R: mix(c.R, other.R, f),
		G: mix(c.G, other.G, f),
		B: mix(c.B, other.B, f),
		A: mix(c.A, other.A, f),
	}
}

// Interpolate moves from c towards other.  The result is
// c*(1-t) + other*t, so t=0 gives c and t=1 gives other.
// This is the mirror image of [Color.Blend].
func (c Color) Interpolate(other Color, t float64) Color {
	return other.Blend(c, t)
}

// Brighten adds amount to the red, green and blue channels, saturating
// at 0 and 255.  Alpha is unchanged.
//
// Brighten(n).Brighten(-n) restores the colour only if no channel saturated.
func (c Color) Brighten(amount int) Color {
	return Color{
		R: addSat(c.R, amount),
		G: addSat(c.G, amount),
		B: addSat(c.B, amount),
		A: c.A,
	}
}

// AdjustAlpha adds amount to the alpha channel, saturating at 0 and 255.
func (c Color) AdjustAlpha(amount int) Color {
	c.A = addSat(c.A, amount)
	return c
}

// WithAlpha returns c with the alpha channel replaced.
func (c Color) WithAlpha(alpha uint8) Color {
	c.A = alpha
	return c
}

// Grayscale replaces the colour channels by the luminance
// 0.299r + 0.587g + 0.114b (truncated).  Alpha is unchanged.
func (c Color) Grayscale() Color {
	y := luma(c.R, c.G, c.B)
	return Color{R: y, G: y, B: y, A: c.A}
}

// Invert replaces each colour channel v by 255-v.  Alpha is unchanged.
func (c Color) Invert() Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
}

// RGB drops the alpha channel.
func (c Color) RGB() Color3 {
	return Color3{R: c.R, G: c.G, B: c.B}
}

// NRGBA converts c to the equivalent image/color value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts any image/color value to a straight-alpha Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Blend mixes c with other, see [Color.Blend].
func (c Color3) Blend(other Color3, factor float64) Color3 {
	f := clampUnit(factor)
	return Color3{
		R: mix(c.R, other.R, f),
		G: mix(c.G, other.G, f),
		B: mix(c.B, other.B, f),
	}
}

// Interpolate moves from c towards other, see [Color.Interpolate].
func (c Color3) Interpolate(other Color3, t float64) Color3 {
	return other.Blend(c, t)
}

// Brighten adds amount to every channel, saturating at 0 and 255.
func (c Color3) Brighten(amount int) Color3 {
	return Color3{
		R: addSat(c.R, amount),
		G: addSat(c.G, amount),
		B: addSat(c.B, amount),
	}
}

// Grayscale replaces all channels by the luminance.
func (c Color3) Grayscale() Color3 {
	y := luma(c.R, c.G, c.B)
	return Color3{R: y, G: y, B: y}
}

// Invert replaces each channel v by 255-v.
func (c Color3) Invert() Color3 {
	return Color3{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// RGBA attaches an alpha channel.
func (c Color3) RGBA(alpha uint8) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}
}

func clampUnit(x float64) float64 {
	// NaN fails both comparisons and ends up as 0
	if x >= 1 {
		return 1
	}
	if x > 0 {
		return x
	}
	return 0
}

// mix computes a*f + b*(1-f), truncated.  The value is evaluated as
// b + (a-b)*f, which is exact for a == b and at both ends of the range.
func mix(a, b uint8, f float64) uint8 {
	v := float64(b) + (float64(a)-float64(b))*f
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v)
}

func addSat(v uint8, amount int) uint8 {
	return uint8(max(0, min(255, int(v)+amount)))
}

func luma(r, g, b uint8) uint8 {
	y := float64(r)*0.299 + float64(g)*0.587 + float64(b)*0.114
	if y >= 255 {
		return 255
	}
	return uint8(y)
}
