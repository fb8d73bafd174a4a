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

//go:build !linux

package gpio

import (
	"fmt"

	"github.com/pigus/pigus/curated"
	"github.com/pigus/pigus/hardware/isa"
)

// DefaultGPIOMem is the device that exposes the GPIO registers to user space
// without root privileges.
const DefaultGPIOMem = "/dev/gpiomem"

// Sentinal error patterns.
const (
	MapError = "gpio: map: %v"
)

// BCM is only available on linux.
type BCM struct{}

// OpenBCM always fails on this platform.
func OpenBCM(device string) (*BCM, error) {
	return nil, curated.Errorf(MapError, fmt.Errorf("%s: not supported on this platform", device))
}

// Configure implements the Lines interface.
func (b *BCM) Configure(levelShifter int) error { return nil }

// Read implements the Lines interface.
func (b *BCM) Read() isa.Sample { return isa.MakeSample(false, false, 0, 0) }

// DriveData implements the Lines interface.
func (b *BCM) DriveData(value uint8) {}

// ReleaseData implements the Lines interface.
func (b *BCM) ReleaseData() {}

// Close implements the Lines interface.
func (b *BCM) Close() error { return nil }
