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

// Package device defines the contract between the bus dispatcher and the
// emulated sound hardware. A Device receives port writes, answers port reads
// and renders audio. Implementations live in sub-packages and the one built
// into the binary is chosen by the variant package.
package device

import "fmt"

// Width is the width of a port access in bytes.
type Width int

// List of valid Width values. Only Byte accesses are made by the dispatcher.
const (
	Byte  Width = 1
	Word  Width = 2
	Dword Width = 4
)

func (w Width) String() string {
	switch w {
	case Byte:
		return "byte"
	case Word:
		return "word"
	case Dword:
		return "dword"
	}
	return fmt.Sprintf("width(%d)", int(w))
}

// Device is implemented by every emulated sound card. All ports are absolute
// I/O addresses.
type Device interface {
	// Initialize is called once before the bus is watched
	Initialize() error

	// WriteToPort is called from the bus core. It must not block
	WriteToPort(port uint16, value uint8, width Width)

	// ReadFromPort is called from the bus core. It must not block
	ReadFromPort(port uint16, width Width) uint8

	// RenderSound fills the buffer with interleaved stereo samples. It is
	// called from the audio core
	RenderSound(buffer []int16)
}

// Layout describes how a device appears on the bus. Offsets in the write and
// read sets are relative to BasePort.
type Layout struct {
	Name     string
	BasePort uint16
	Write    []uint16
	Read     []uint16
}

// Port returns the absolute port of an offset.
func (l Layout) Port(offset uint16) uint16 {
	return l.BasePort + offset
}

// SampleMemory is the on-board memory of cards that have one.
type SampleMemory interface {
	Read8(addr uint32) (uint8, error)
	Write8(addr uint32, v uint8) error
	Size() uint32
}

// Card is a Device that knows its own bus layout.
type Card interface {
	Device
	Layout() Layout
}

// Flusher is implemented by devices that queue writes to their sample
// memory. FlushDRAM is called from the bookkeeping core.
type Flusher interface {
	FlushDRAM() (int, error)
}
