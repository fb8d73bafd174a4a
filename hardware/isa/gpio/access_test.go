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

import (
	"testing"

	"github.com/pigus/pigus/hardware/isa"
	"github.com/pigus/pigus/test"
)

func TestFunctionSelect(t *testing.T) {
	reg, shift, mask := fsel(27)
	test.Equate(t, reg, 2)
	test.Equate(t, int(shift), 21)
	test.Equate(t, mask, uint32(0x7<<21))

	reg, shift, _ = fsel(4)
	test.Equate(t, reg, 0)
	test.Equate(t, int(shift), 12)

	reg, shift, _ = fsel(11)
	test.Equate(t, reg, 1)
	test.Equate(t, int(shift), 3)
}

func TestDataMasks(t *testing.T) {
	var m0, o0, m1, o1 uint32
	for l := isa.LineData0; l < isa.LineData0+isa.DataBits; l++ {
		reg, shift, mask := fsel(l)
		switch reg {
		case regFSEL0:
			m0 |= mask
			o0 |= fselOutput << shift
		case regFSEL1:
			m1 |= mask
			o1 |= fselOutput << shift
		}
	}
	test.Equate(t, m0, uint32(fsel0DataMask))
	test.Equate(t, o0, uint32(fsel0DataOutput))
	test.Equate(t, m1, uint32(fsel1DataMask))
	test.Equate(t, o1, uint32(fsel1DataOutput))
}

func TestRegisterAccess(t *testing.T) {
	r := make(registers, regWords)

	// unrelated function select bits are preserved
	r[regFSEL0] = 0x7
	r[regFSEL1] = 0x7 << 6

	r.driveData(0xa5)
	test.Equate(t, r[regSET0], uint32(0xa50))
	test.Equate(t, r[regCLR0], uint32(0x5a0))
	test.Equate(t, r[regFSEL0], uint32(fsel0DataOutput|0x7))
	test.Equate(t, r[regFSEL1], uint32(fsel1DataOutput|0x7<<6))

	r.releaseData()
	test.Equate(t, r[regFSEL0], uint32(0x7))
	test.Equate(t, r[regFSEL1], uint32(0x7<<6))

	r[regLEV0] = uint32(isa.MakeSample(true, false, 0x3ff, 0x12))
	test.Equate(t, r.read().Address(), 0x3ff)
}

func TestConfigure(t *testing.T) {
	r := make(registers, regWords)
	for i := regFSEL0; i <= regFSEL0+3; i++ {
		r[i] = 0xffffffff
	}

	r.configure(isa.LineLevelShifter)

	test.Equate(t, r[regFSEL0]&0x3fffffff, uint32(0))
	test.Equate(t, r[regFSEL1]&0x3fffffff, uint32(0))
	test.Equate(t, r[regFSEL0+2]&0x3fffffff, uint32(fselOutput<<21))
	test.Equate(t, r[regSET0], uint32(1<<27))
}
