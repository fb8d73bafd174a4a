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

//go:build !adlib

package variant

import (
	"github.com/pigus/pigus/hardware/device"
	"github.com/pigus/pigus/hardware/device/gus"
)

// Name of the selected variant.
const Name = "gus"

// DefaultBase is the default I/O base of the selected variant.
const DefaultBase = gus.DefaultBase

// New creates the selected card at the I/O base.
func New(ioBase uint16, mem device.SampleMemory) device.Card {
	return gus.NewGUS(ioBase, mem)
}
