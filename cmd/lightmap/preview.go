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
	"bufio"
	"fmt"
	"image"
	"io"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/term"
)

// terminalWidth returns the number of columns of the terminal connected to
// f, or fallback if f is not a terminal.
func terminalWidth(f *os.File, fallback int) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w < 1 {
		return fallback
	}
	return w
}

// writePreview prints img using 24-bit colour escape sequences.  Every
// character cell shows two pixels, using the upper half block with the
// foreground for the top pixel and the background for the bottom pixel.
// Images wider than cols are reduced with nearest neighbour sampling.
func writePreview(w io.Writer, img image.Image, cols int) error {
	b := img.Bounds()
	if b.Empty() {
		return nil
	}
	dw, dh := b.Dx(), b.Dy()
	if cols > 0 && dw > cols {
		dh = max(dh*cols/dw, 1)
		dw = cols
	}

	// an odd last row is paired with black
	small := image.NewNRGBA(image.Rect(0, 0, dw, dh+dh%2))
	draw.NearestNeighbor.Scale(small, image.Rect(0, 0, dw, dh), img, b, draw.Src, nil)

	out := bufio.NewWriter(w)
	for y := 0; y < dh; y += 2 {
		for x := range dw {
			top := small.NRGBAAt(x, y)
			bot := small.NRGBAAt(x, y+1)
			fmt.Fprintf(out, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				top.R, top.G, top.B, bot.R, bot.G, bot.B)
		}
		out.WriteString("\x1b[0m\n")
	}
	return out.Flush()
}
