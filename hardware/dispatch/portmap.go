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

package dispatch

import (
	"fmt"
	"strings"

	"github.com/pigus/pigus/curated"
	"github.com/pigus/pigus/hardware/device"
	"github.com/pigus/pigus/hardware/isa"
)

// Sentinal error patterns.
const (
	PortMapError = "dispatch: port map: %v"
)

// PortMap is the set of port offsets that the device responds to. It is
// immutable once created.
type PortMap struct {
	write [isa.NumAddresses]device.Width
	read  [isa.NumAddresses]device.Width
}

// NewPortMap is the preferred method of initialisation for the PortMap type.
// Every offset is given Byte width.
func NewPortMap(write []uint16, read []uint16) (*PortMap, error) {
	pm := &PortMap{}

	for _, o := range write {
		if o >= isa.NumAddresses {
			return nil, curated.Errorf(PortMapError, fmt.Errorf("write offset %#04x out of range", o))
		}
		pm.write[o] = device.Byte
	}

	for _, o := range read {
		if o >= isa.NumAddresses {
			return nil, curated.Errorf(PortMapError, fmt.Errorf("read offset %#04x out of range", o))
		}
		pm.read[o] = device.Byte
	}

	return pm, nil
}

// NewPortMapFromLayout creates a PortMap from a device layout.
func NewPortMapFromLayout(l device.Layout) (*PortMap, error) {
	return NewPortMap(l.Write, l.Read)
}

// Write returns the access width of the offset and true if the offset is in
// the write set.
func (pm *PortMap) Write(offset uint16) (device.Width, bool) {
	if offset >= isa.NumAddresses {
		return 0, false
	}
	w := pm.write[offset]
	return w, w != 0
}

// Read returns the access width of the offset and true if the offset is in
// the read set.
func (pm *PortMap) Read(offset uint16) (device.Width, bool) {
	if offset >= isa.NumAddresses {
		return 0, false
	}
	w := pm.read[offset]
	return w, w != 0
}

// Offsets returns the write and read sets in ascending order.
func (pm *PortMap) Offsets() (write []uint16, read []uint16) {
	for o := range pm.write {
		if pm.write[o] != 0 {
			write = append(write, uint16(o))
		}
		if pm.read[o] != 0 {
			read = append(read, uint16(o))
		}
	}
	return write, read
}

// Describe the port map as absolute ports.
func (pm *PortMap) Describe(base uint16) string {
	s := strings.Builder{}
	w, r := pm.Offsets()

	describe := func(label string, offsets []uint16) {
		s.WriteString(label)
		for i, o := range offsets {
			if i > 0 {
				s.WriteString(" ")
			}
			s.WriteString(fmt.Sprintf("%#03x", base+o))
		}
		s.WriteString("\n")
	}

	describe("write: ", w)
	describe("read:  ", r)

	return s.String()
}
