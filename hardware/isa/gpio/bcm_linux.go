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

//go:build linux

package gpio

import (
	"os"
	"unsafe"

	"github.com/pigus/pigus/curated"
	"github.com/pigus/pigus/hardware/isa"
	"golang.org/x/sys/unix"
)

// DefaultGPIOMem is the device that exposes the GPIO registers to user space
// without root privileges.
const DefaultGPIOMem = "/dev/gpiomem"

// Sentinal error patterns.
const (
	MapError = "gpio: map: %v"
)

// BCM implements the Lines interface by mapping the GPIO registers of a
// BCM283x or BCM2711 into memory.
type BCM struct {
	mem  []byte
	regs registers
}

// OpenBCM maps the GPIO registers from the named device.
func OpenBCM(device string) (*BCM, error) {
	f, err := os.OpenFile(device, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, curated.Errorf(MapError, err)
	}
	defer f.Close()

	mem, err := unix.Mmap(int(f.Fd()), 0, os.Getpagesize(), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, curated.Errorf(MapError, err)
	}

	return &BCM{
		mem:  mem,
		regs: unsafe.Slice((*uint32)(unsafe.Pointer(&mem[0])), regWords),
	}, nil
}

// Configure implements the Lines interface.
func (b *BCM) Configure(levelShifter int) error {
	b.regs.configure(levelShifter)
	return nil
}

// Read implements the Lines interface.
func (b *BCM) Read() isa.Sample {
	return b.regs.read()
}

// DriveData implements the Lines interface.
func (b *BCM) DriveData(value uint8) {
	b.regs.driveData(value)
}

// ReleaseData implements the Lines interface.
func (b *BCM) ReleaseData() {
	b.regs.releaseData()
}

// Close implements the Lines interface.
func (b *BCM) Close() error {
	if b.mem == nil {
		return nil
	}
	b.regs.releaseData()
	b.regs = nil
	err := unix.Munmap(b.mem)
	b.mem = nil
	if err != nil {
		return curated.Errorf(MapError, err)
	}
	return nil
}
