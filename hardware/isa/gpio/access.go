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
	"sync/atomic"

	"github.com/pigus/pigus/hardware/isa"
)

// registers is the word view of the GPIO block. Every access is atomic so
// that the compiler never caches or elides a hardware access.
type registers []uint32

func (r registers) load(reg int) uint32 {
	return atomic.LoadUint32(&r[reg])
}

func (r registers) store(reg int, v uint32) {
	atomic.StoreUint32(&r[reg], v)
}

func (r registers) setFunction(line int, f uint32) {
	reg, shift, mask := fsel(line)
	r.store(reg, (r.load(reg)&^mask)|(f<<shift))
}

func (r registers) configure(levelShifter int) {
	for l := 0; l < 32; l++ {
		if l == levelShifter {
			continue
		}
		r.setFunction(l, fselInput)
	}
	if levelShifter >= 0 && levelShifter < 32 {
		r.store(regSET0, 1<<uint(levelShifter))
		r.setFunction(levelShifter, fselOutput)
	}
}

func (r registers) read() isa.Sample {
	return isa.Sample(r.load(regLEV0))
}

func (r registers) driveData(value uint8) {
	v := uint32(value) << isa.LineData0
	r.store(regSET0, v)
	r.store(regCLR0, ^v&isa.DataLines)
	r.store(regFSEL0, (r.load(regFSEL0)&^fsel0DataMask)|fsel0DataOutput)
	r.store(regFSEL1, (r.load(regFSEL1)&^fsel1DataMask)|fsel1DataOutput)
}

func (r registers) releaseData() {
	r.store(regFSEL0, r.load(regFSEL0)&^fsel0DataMask)
	r.store(regFSEL1, r.load(regFSEL1)&^fsel1DataMask)
}
