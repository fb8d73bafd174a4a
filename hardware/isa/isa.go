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

package isa

import "fmt"

// GPIO line numbers of the bus signals.
const (
	LineIOW = 0
	LineIOR = 1

	LineData0    = 4
	LineAddress0 = 12

	// the default line for the level shifter enable
	LineLevelShifter = 27
)

// Bit widths and masks of the data and address fields.
const (
	DataBits    = 8
	AddressBits = 10

	DataMask    = (1 << DataBits) - 1
	AddressMask = (1 << AddressBits) - 1

	// mask of every data line in a Sample
	DataLines = DataMask << LineData0

	// mask of every address line in a Sample
	AddressLines = AddressMask << LineAddress0

	// mask of every line the bus occupies
	BusLines = 1<<LineIOW | 1<<LineIOR | DataLines | AddressLines

	// number of distinct addresses on the bus
	NumAddresses = 1 << AddressBits
)

// Sample is the state of every GPIO line at a single instant.
type Sample uint32

// MakeSample creates a Sample from its parts. The iow and ior arguments
// indicate whether the strobe is asserted (ie. the line is low).
func MakeSample(iow bool, ior bool, address uint16, data uint8) Sample {
	var s Sample
	if !iow {
		s |= 1 << LineIOW
	}
	if !ior {
		s |= 1 << LineIOR
	}
	s |= Sample(data) << LineData0
	s |= Sample(address&AddressMask) << LineAddress0
	return s
}

// IOW returns true if the write strobe is asserted.
func (s Sample) IOW() bool {
	return s&(1<<LineIOW) == 0
}

// IOR returns true if the read strobe is asserted.
func (s Sample) IOR() bool {
	return s&(1<<LineIOR) == 0
}

// Address returns the ten bit address field.
func (s Sample) Address() uint16 {
	return uint16(s>>LineAddress0) & AddressMask
}

// Data returns the eight bit data field.
func (s Sample) Data() uint8 {
	return uint8(s >> LineData0)
}

func (s Sample) String() string {
	return fmt.Sprintf("iow=%v ior=%v addr=%#03x data=%#02x", s.IOW(), s.IOR(), s.Address(), s.Data())
}

// Decoded is the result of Decode().
type Decoded struct {
	// strobe asserted
	WriteStrobe bool
	ReadStrobe  bool

	// address minus the base port. no range check has been made
	Offset uint16

	Data uint8
}

// Decode a sample relative to the base port. The offset arithmetic wraps so
// that addresses below the base port produce large offsets that will never
// be in a port map.
func Decode(s Sample, basePort uint16) Decoded {
	return Decoded{
		WriteStrobe: s.IOW(),
		ReadStrobe:  s.IOR(),
		Offset:      s.Address() - basePort,
		Data:        s.Data(),
	}
}
