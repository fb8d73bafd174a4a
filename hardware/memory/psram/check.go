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

package psram

import (
	"fmt"
)

// CheckResult summarises a call to Check().
type CheckResult struct {
	Start  uint32
	Length uint32

	// number of values written and read back for each width
	Bytes  int
	Words  int
	Dwords int
}

func (r CheckResult) String() string {
	return fmt.Sprintf("%#06x-%#06x: %d bytes, %d words, %d dwords ok",
		r.Start, r.Start+r.Length, r.Bytes, r.Words, r.Dwords)
}

// pattern produces a value that differs for neighbouring addresses and for
// each pass of the check.
func pattern(addr uint32, pass uint32) uint32 {
	v := addr*0x9e3779b1 + pass*0x7f4a7c15
	return v ^ (v >> 15)
}

// Check writes and reads back the address range with each access width. The
// range is overwritten.
func (p *PSRAM) Check(start uint32, length uint32) (CheckResult, error) {
	res := CheckResult{Start: start, Length: length}

	if err := p.check(start, int(length)); err != nil {
		return res, err
	}

	end := start + length

	for a := start; a < end; a++ {
		if err := p.Write8(a, uint8(pattern(a, 1))); err != nil {
			return res, err
		}
	}
	for a := start; a < end; a++ {
		v, err := p.Read8(a)
		if err != nil {
			return res, err
		}
		if w := uint8(pattern(a, 1)); v != w {
			return res, fmt.Errorf("byte mismatch at %#06x: read %#02x, wrote %#02x", a, v, w)
		}
		res.Bytes++
	}

	for a := start; a+2 <= end; a += 2 {
		if err := p.Write16(a, uint16(pattern(a, 2))); err != nil {
			return res, err
		}
	}
	for a := start; a+2 <= end; a += 2 {
		v, err := p.Read16(a)
		if err != nil {
			return res, err
		}
		if w := uint16(pattern(a, 2)); v != w {
			return res, fmt.Errorf("word mismatch at %#06x: read %#04x, wrote %#04x", a, v, w)
		}
		res.Words++
	}

	for a := start; a+4 <= end; a += 4 {
		if err := p.Write32(a, pattern(a, 3)); err != nil {
			return res, err
		}
	}
	for a := start; a+4 <= end; a += 4 {
		v, err := p.Read32(a)
		if err != nil {
			return res, err
		}
		if w := pattern(a, 3); v != w {
			return res, fmt.Errorf("dword mismatch at %#06x: read %#08x, wrote %#08x", a, v, w)
		}
		res.Dwords++
	}

	return res, nil
}
