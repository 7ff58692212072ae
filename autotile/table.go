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

// table maps every neighbour mask to the top-left corner of an atlas
// piece.  The binary keys are grouped as top row, middle row, bottom row
// of the neighbourhood (see [grid.Mask]).
var table = [256]Coord{
	0b000_00_000: {56, 0},
	0b000_00_001: {56, 0},
	0b000_00_010: {48, 0},
	0b000_00_011: {48, 0},
	0b000_00_100: {56, 0},
	0b000_00_101: {56, 0},
	0b000_00_110: {48, 0},
	0b000_00_111: {48, 0},
	0b000_01_000: {0, 24},
	0b000_01_001: {0, 24},
	0b000_01_010: {56, 16},
	0b000_01_011: {0, 0},
	0b000_01_100: {0, 24},
	0b000_01_101: {0, 24},
	0b000_01_110: {56, 16},
	0b000_01_111: {0, 0},
	0b000_10_000: {16, 24},
	0b000_10_001: {16, 24},
	0b000_10_010: {56, 8},
	0b000_10_011: {56, 8},
	0b000_10_100: {16, 24},
	0b000_10_101: {16, 24},
	0b000_10_110: {16, 0},
	0b000_10_111: {16, 0},
	0b000_11_000: {8, 24},
	0b000_11_001: {8, 24},
	0b000_11_010: {8, 40},
	0b000_11_011: {16, 40},
	0b000_11_100: {8, 24},
	0b000_11_101: {8, 24},
	0b000_11_110: {0, 40},
	0b000_11_111: {8, 0},
	0b001_00_000: {56, 0},
	0b001_00_001: {56, 0},
	0b001_00_010: {48, 0},
	0b001_00_011: {48, 0},
	0b001_00_100: {56, 0},
	0b001_00_101: {56, 0},
	0b001_00_110: {48, 0},
	0b001_00_111: {48, 0},
	0b001_01_000: {0, 24},
	0b001_01_001: {0, 24},
	0b001_01_010: {56, 16},
	0b001_01_011: {0, 0},
	0b001_01_100: {0, 24},
	0b001_01_101: {0, 24},
	0b001_01_110: {56, 16},
	0b001_01_111: {0, 0},
	0b001_10_000: {16, 24},
	0b001_10_001: {16, 24},
	0b001_10_010: {56, 8},
	0b001_10_011: {56, 8},
	0b001_10_100: {16, 24},
	0b001_10_101: {16, 24},
	0b001_10_110: {16, 0},
	0b001_10_111: {16, 0},
	0b001_11_000: {8, 24},
	0b001_11_001: {8, 24},
	0b001_11_010: {8, 40},
	0b001_11_011: {16, 40},
	0b001_11_100: {8, 24},
	0b001_11_101: {8, 24},
	0b001_11_110: {0, 40},
	0b001_11_111: {8, 0},
	0b010_00_000: {48, 16},
	0b010_00_001: {48, 16},
	0b010_00_010: {48, 8},
	0b010_00_011: {48, 8},
	0b010_00_100: {48, 16},
	0b010_00_101: {48, 16},
	0b010_00_110: {48, 8},
	0b010_00_111: {48, 8},
	0b010_01_000: {56, 24},
	0b010_01_001: {56, 24},
	0b010_01_010: {48, 32},
	0b010_01_011: {48, 40},
	0b010_01_100: {56, 24},
	0b010_01_101: {56, 24},
	0b010_01_110: {48, 32},
	0b010_01_111: {48, 40},
	0b010_10_000: {56, 32},
	0b010_10_001: {56, 32},
	0b010_10_010: {40, 32},
	0b010_10_011: {40, 32},
	0b010_10_100: {56, 32},
	0b010_10_101: {56, 32},
	0b010_10_110: {40, 40},
	0b010_10_111: {40, 40},
	0b010_11_000: {8, 32},
	0b010_11_001: {8, 32},
	0b010_11_010: {32, 8},
	0b010_11_011: {32, 32},
	0b010_11_100: {8, 32},
	0b010_11_101: {8, 32},
	0b010_11_110: {24, 32},
	0b010_11_111: {32, 16},
	0b011_00_000: {48, 16},
	0b011_00_001: {48, 16},
	0b011_00_010: {48, 8},
	0b011_00_011: {48, 8},
	0b011_00_100: {48, 16},
	0b011_00_101: {48, 16},
	0b011_00_110: {48, 8},
	0b011_00_111: {48, 8},
	0b011_01_000: {0, 16},
	0b011_01_001: {0, 16},
	0b011_01_010: {48, 24},
	0b011_01_011: {0, 8},
	0b011_01_100: {0, 16},
	0b011_01_101: {0, 16},
	0b011_01_110: {48, 24},
	0b011_01_111: {0, 8},
	0b011_10_000: {56, 32},
	0b011_10_001: {56, 32},
	0b011_10_010: {40, 32},
	0b011_10_011: {40, 32},
	0b011_10_100: {56, 32},
	0b011_10_101: {56, 32},
	0b011_10_110: {40, 40},
	0b011_10_111: {40, 40},
	0b011_11_000: {16, 32},
	0b011_11_001: {16, 32},
	0b011_11_010: {32, 24},
	0b011_11_011: {40, 8},
	0b011_11_100: {16, 32},
	0b011_11_101: {16, 32},
	0b011_11_110: {24, 40},
	0b011_11_111: {40, 16},
	0b100_00_000: {56, 0},
	0b100_00_001: {56, 0},
	0b100_00_010: {48, 0},
	0b100_00_011: {48, 0},
	0b100_00_100: {8, 8},
	0b100_00_101: {8, 8},
	0b100_00_110: {48, 0},
	0b100_00_111: {48, 0},
	0b100_01_000: {0, 24},
	0b100_01_001: {0, 24},
	0b100_01_010: {56, 16},
	0b100_01_011: {0, 0},
	0b100_01_100: {0, 24},
	0b100_01_101: {0, 24},
	0b100_01_110: {56, 16},
	0b100_01_111: {0, 0},
	0b100_10_000: {16, 24},
	0b100_10_001: {16, 24},
	0b100_10_010: {56, 8},
	0b100_10_011: {56, 8},
	0b100_10_100: {16, 24},
	0b100_10_101: {16, 24},
	0b100_10_110: {16, 0},
	0b100_10_111: {16, 0},
	0b100_11_000: {8, 24},
	0b100_11_001: {8, 24},
	0b100_11_010: {8, 40},
	0b100_11_011: {16, 40},
	0b100_11_100: {8, 24},
	0b100_11_101: {8, 24},
	0b100_11_110: {0, 40},
	0b100_11_111: {8, 0},
	0b101_00_000: {8, 8},
	0b101_00_001: {8, 8},
	0b101_00_010: {48, 0},
	0b101_00_011: {48, 0},
	0b101_00_100: {8, 8},
	0b101_00_101: {8, 8},
	0b101_00_110: {48, 0},
	0b101_00_111: {48, 0},
	0b101_01_000: {0, 24},
	0b101_01_001: {0, 24},
	0b101_01_010: {56, 16},
	0b101_01_011: {0, 0},
	0b101_01_100: {0, 24},
	0b101_01_101: {0, 24},
	0b101_01_110: {56, 16},
	0b101_01_111: {0, 0},
	0b101_10_000: {16, 24},
	0b101_10_001: {16, 24},
	0b101_10_010: {56, 8},
	0b101_10_011: {56, 8},
	0b101_10_100: {16, 24},
	0b101_10_101: {16, 24},
	0b101_10_110: {16, 0},
	0b101_10_111: {16, 0},
	0b101_11_000: {8, 24},
	0b101_11_001: {8, 24},
	0b101_11_010: {8, 40},
	0b101_11_011: {16, 40},
	0b101_11_100: {8, 24},
	0b101_11_101: {8, 24},
	0b101_11_110: {0, 40},
	0b101_11_111: {8, 0},
	0b110_00_000: {48, 16},
	0b110_00_001: {48, 16},
	0b110_00_010: {48, 8},
	0b110_00_011: {48, 8},
	0b110_00_100: {48, 16},
	0b110_00_101: {48, 16},
	0b110_00_110: {48, 8},
	0b110_00_111: {48, 8},
	0b110_01_000: {56, 24},
	0b110_01_001: {56, 24},
	0b110_01_010: {48, 32},
	0b110_01_011: {48, 40},
	0b110_01_100: {56, 24},
	0b110_01_101: {56, 24},
	0b110_01_110: {48, 32},
	0b110_01_111: {48, 40},
	0b110_10_000: {16, 16},
	0b110_10_001: {16, 16},
	0b110_10_010: {40, 24},
	0b110_10_011: {40, 24},
	0b110_10_100: {16, 16},
	0b110_10_101: {16, 16},
	0b110_10_110: {16, 8},
	0b110_10_111: {16, 8},
	0b110_11_000: {0, 32},
	0b110_11_001: {0, 32},
	0b110_11_010: {24, 24},
	0b110_11_011: {32, 40},
	0b110_11_100: {0, 32},
	0b110_11_101: {0, 32},
	0b110_11_110: {24, 8},
	0b110_11_111: {24, 16},
	0b111_00_000: {48, 16},
	0b111_00_001: {48, 16},
	0b111_00_010: {48, 8},
	0b111_00_011: {48, 8},
	0b111_00_100: {48, 16},
	0b111_00_101: {48, 16},
	0b111_00_110: {48, 8},
	0b111_00_111: {48, 8},
	0b111_01_000: {0, 16},
	0b111_01_001: {0, 16},
	0b111_01_010: {48, 24},
	0b111_01_011: {0, 8},
	0b111_01_100: {0, 16},
	0b111_01_101: {0, 16},
	0b111_01_110: {48, 24},
	0b111_01_111: {0, 8},
	0b111_10_000: {16, 16},
	0b111_10_001: {16, 16},
	0b111_10_010: {40, 24},
	0b111_10_011: {40, 24},
	0b111_10_100: {16, 16},
	0b111_10_101: {16, 16},
	0b111_10_110: {16, 8},
	0b111_10_111: {16, 8},
	0b111_11_000: {8, 16},
	0b111_11_001: {8, 16},
	0b111_11_010: {32, 0},
	0b111_11_011: {40, 0},
	0b111_11_100: {8, 16},
	0b111_11_101: {8, 16},
	0b111_11_110: {24, 0},
	0b111_11_111: {8, 8},
}
