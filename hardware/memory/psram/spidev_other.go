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

package psram

import (
	"fmt"

	"github.com/pigus/pigus/curated"
)

// DefaultSpeed is the default SPI clock speed in Hz.
const DefaultSpeed = 32000000

// Spidev is only available on linux.
type Spidev struct{}

// OpenSpidev always fails on this platform.
func OpenSpidev(device string, speed uint32) (*Spidev, error) {
	return nil, curated.Errorf(LinkError, fmt.Errorf("%s: not supported on this platform", device))
}

// Transfer implements the Link interface.
func (s *Spidev) Transfer(tx []byte, rx []byte) error {
	return curated.Errorf(LinkError, "not supported on this platform")
}

// Close the spidev device.
func (s *Spidev) Close() error {
	return nil
}
