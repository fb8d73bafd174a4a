// This file is part of PiGUS.
//
// PiGUS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PiGUS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PiGUS.  If not, see <https://www.gnu.org/licenses/>.

package gpio

// Register offsets (in 32bit words) of the BCM283x/BCM2711 GPIO block.
const (
	regFSEL0 = 0x00 / 4
	regFSEL1 = 0x04 / 4
	regSET0  = 0x1c / 4
	regCLR0  = 0x28 / 4
	regLEV0  = 0x34 / 4

	// number of words mapped
	regWords = 0xb4 / 4
)

// Function select values.
const (
	fselInput  = 0b000
	fselOutput = 0b001
	fselMask   = 0b111

	// lines per function select register
	fselLines = 10
)

// Function select masks for the data lines. D0-D5 are lines 4-9 in FSEL0 and
// D6-D7 are lines 10-11 in FSEL1.
const (
	fsel0DataMask   = 0x3ffff000
	fsel0DataOutput = 0x09249000
	fsel1DataMask   = 0x0000003f
	fsel1DataOutput = 0x00000009
)

// fsel returns the register, shift and mask for the function select bits of
// a line.
func fsel(line int) (reg int, shift uint, mask uint32) {
	reg = regFSEL0 + line/fselLines
	shift = uint(line%fselLines) * 3
	return reg, shift, fselMask << shift
}
