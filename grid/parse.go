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

package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Wall is the character which marks an occupied tile in a text map.
// Every other character marks a free tile.
const Wall = '#'

// Parse reads a map in text form, one line per row of tiles and one
// character per tile.  The grid is as wide as the longest line, counted in
// characters; shorter lines are padded with free tiles.  Trailing empty
// lines are ignored, but a trailing line of spaces is a row of free tiles.
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]rune
	width := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := []rune(strings.TrimRight(scanner.Text(), "\r"))
		rows = append(rows, line)
		width = max(width, len(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}

	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}

	g, err := New(width, len(rows))
	if err != nil {
		return nil, fmt.Errorf("parse map: %w", err)
	}
	for y, line := range rows {
		for x, c := range line {
			if c == Wall {
				g.cells[y*width+x] = true
			}
		}
	}
	return g, nil
}

// ParseString is like [Parse], but reads from a string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// Load reads a text map from a file.
func Load(path string) (g *Grid, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	g, err = Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
