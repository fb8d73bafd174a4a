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

// Package adlib emulates the host interface of an AdLib (OPL2) card. The
// register file is emulated along with enough of the timer logic for the
// usual detection routines to find the card. Synthesis is not emulated and
// RenderSound() outputs silence.
package adlib

import (
	"fmt"

	"github.com/pigus/pigus/curated"
	"github.com/pigus/pigus/hardware/device"
)

// Sentinal error patterns.
const (
	BaseError = "adlib: invalid I/O base (%#03x)"
)

// DefaultBase is the I/O base of every AdLib card.
const DefaultBase = 0x388

// Port offsets from the base.
const (
	portAddress = 0x00
	portData    = 0x01
)

// WritePorts are the offsets that the card responds to on a write.
var WritePorts = []uint16{portAddress, portData}

// ReadPorts are the offsets that the card responds to on a read.
var ReadPorts = []uint16{portAddress}

const regTimerControl = 0x04

// Status register bits.
const (
	statusIRQ    = 0x80
	statusTimer1 = 0x40
	statusTimer2 = 0x20
)

// Timer control bits.
const (
	timerStart1 = 0x01
	timerStart2 = 0x02
	timerMask2  = 0x20
	timerMask1  = 0x40
	timerReset  = 0x80
)

// AdLib is the emulated card.
type AdLib struct {
	base    uint16
	address uint8
	regs    [256]uint8
	status  uint8
}

// NewAdLib is the preferred method of initialisation for the AdLib type.
func NewAdLib(base uint16) *AdLib {
	return &AdLib{base: base}
}

func (a *AdLib) String() string {
	return fmt.Sprintf("AdLib at %#03x", a.base)
}

// Layout returns the bus layout of the card.
func (a *AdLib) Layout() device.Layout {
	return device.Layout{
		Name:     "AdLib",
		BasePort: a.base,
		Write:    WritePorts,
		Read:     ReadPorts,
	}
}

// Initialize implements the device.Device interface.
func (a *AdLib) Initialize() error {
	if a.base != DefaultBase && a.base != 0x380 {
		return curated.Errorf(BaseError, a.base)
	}
	a.address = 0
	a.status = 0
	clear(a.regs[:])
	return nil
}

// Register returns the value of an OPL2 register.
func (a *AdLib) Register(reg uint8) uint8 {
	return a.regs[reg]
}

// WriteToPort implements the device.Device interface.
func (a *AdLib) WriteToPort(port uint16, value uint8, width device.Width) {
	switch port - a.base {
	case portAddress:
		a.address = value
	case portData:
		a.regs[a.address] = value
		if a.address == regTimerControl {
			a.timerControl(value)
		}
	}
}

func (a *AdLib) timerControl(value uint8) {
	if value&timerReset == timerReset {
		a.status = 0
		return
	}

	// timers expire immediately
	if value&timerStart1 == timerStart1 && value&timerMask1 == 0 {
		a.status |= statusIRQ | statusTimer1
	}
	if value&timerStart2 == timerStart2 && value&timerMask2 == 0 {
		a.status |= statusIRQ | statusTimer2
	}
}

// ReadFromPort implements the device.Device interface.
func (a *AdLib) ReadFromPort(port uint16, width device.Width) uint8 {
	if port-a.base == portAddress {
		return a.status
	}
	return 0xff
}

// RenderSound implements the device.Device interface.
func (a *AdLib) RenderSound(buffer []int16) {
	clear(buffer)
}
