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

package psram

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/pigus/pigus/curated"
)

// Sentinal error patterns.
const (
	LinkError    = "psram: link: %v"
	AddressError = "psram: address out of range (%#06x+%d)"
)

// Command bytes.
const (
	cmdResetEnable = 0x66
	cmdReset       = 0x99
	cmdWrite       = 0x02
	cmdRead        = 0x03
	cmdFastRead    = 0x0b
)

// DefaultSize is the size of a 64Mbit chip.
const DefaultSize = 8 << 20

// largest address that can be sent in a command.
const maxAddress = 1 << 24

// Link is a connection to the chip. Each call to Transfer is one chip-select
// frame. The rx slice is the same length as tx and receives the bytes clocked
// in while tx is clocked out.
type Link interface {
	Transfer(tx []byte, rx []byte) error
}

// Timings of the reset sequence.
type Timings struct {
	// wait after power up before the first command
	PowerUp time.Duration

	// wait between the reset enable and reset commands
	Gap time.Duration

	// wait after the reset command before the chip is used
	Ready time.Duration
}

// MinTimings are the shortest reset timings allowed.
var MinTimings = Timings{
	PowerUp: 150 * time.Microsecond,
	Gap:     150 * time.Microsecond,
	Ready:   100 * time.Microsecond,
}

// clamp raises any timing below the minimum to the minimum.
func (t Timings) clamp() Timings {
	t.PowerUp = max(t.PowerUp, MinTimings.PowerUp)
	t.Gap = max(t.Gap, MinTimings.Gap)
	t.Ready = max(t.Ready, MinTimings.Ready)
	return t
}

// PSRAM is a connection to the chip. It is safe for concurrent use.
type PSRAM struct {
	crit sync.Mutex

	link     Link
	size     uint32
	fastRead bool

	delay func(time.Duration)

	tx [16]byte
	rx [16]byte
}

// NewPSRAM is the preferred method of initialisation for the PSRAM type.
func NewPSRAM(link Link, size uint32) *PSRAM {
	if size > maxAddress {
		size = maxAddress
	}
	return &PSRAM{
		link:  link,
		size:  size,
		delay: time.Sleep,
	}
}

func (p *PSRAM) String() string {
	return fmt.Sprintf("psram: %dk (fast read %v)", p.size/1024, p.fastRead)
}

// SetFastRead selects the fast read command for reads.
func (p *PSRAM) SetFastRead(fast bool) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.fastRead = fast
}

// SetDelay replaces the function used to wait during Reset(). The default is
// time.Sleep.
func (p *PSRAM) SetDelay(delay func(time.Duration)) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.delay = delay
}

// Size implements the device.SampleMemory interface.
func (p *PSRAM) Size() uint32 {
	return p.size
}

// Reset the chip. Timings shorter than MinTimings are raised to the minimum.
func (p *PSRAM) Reset(t Timings) error {
	p.crit.Lock()
	defer p.crit.Unlock()

	t = t.clamp()

	p.delay(t.PowerUp)
	if err := p.command(cmdResetEnable); err != nil {
		return err
	}
	p.delay(t.Gap)
	if err := p.command(cmdReset); err != nil {
		return err
	}
	p.delay(t.Ready)

	return nil
}

func (p *PSRAM) command(cmd byte) error {
	p.tx[0] = cmd
	if err := p.link.Transfer(p.tx[:1], p.rx[:1]); err != nil {
		return curated.Errorf(LinkError, err)
	}
	return nil
}

// header writes the command and address to the tx buffer and returns the
// length of the header.
func (p *PSRAM) header(cmd byte, addr uint32) int {
	p.tx[0] = cmd
	p.tx[1] = byte(addr >> 16)
	p.tx[2] = byte(addr >> 8)
	p.tx[3] = byte(addr)
	if cmd == cmdFastRead {
		p.tx[4] = 0
		return 5
	}
	return 4
}

func (p *PSRAM) check(addr uint32, n int) error {
	if uint64(addr)+uint64(n) > uint64(p.size) {
		return curated.Errorf(AddressError, addr, n)
	}
	return nil
}

func (p *PSRAM) write(addr uint32, data []byte) error {
	p.crit.Lock()
	defer p.crit.Unlock()

	if err := p.check(addr, len(data)); err != nil {
		return err
	}

	n := p.header(cmdWrite, addr)
	n += copy(p.tx[n:], data)

	if err := p.link.Transfer(p.tx[:n], p.rx[:n]); err != nil {
		return curated.Errorf(LinkError, err)
	}
	return nil
}

func (p *PSRAM) read(addr uint32, data []byte) error {
	p.crit.Lock()
	defer p.crit.Unlock()

	if err := p.check(addr, len(data)); err != nil {
		return err
	}

	cmd := byte(cmdRead)
	if p.fastRead {
		cmd = cmdFastRead
	}

	n := p.header(cmd, addr)
	clear(p.tx[n : n+len(data)])

	if err := p.link.Transfer(p.tx[:n+len(data)], p.rx[:n+len(data)]); err != nil {
		return curated.Errorf(LinkError, err)
	}
	copy(data, p.rx[n:n+len(data)])

	return nil
}

// Write8 implements the device.SampleMemory interface.
func (p *PSRAM) Write8(addr uint32, v uint8) error {
	return p.write(addr, []byte{v})
}

// Write16 writes a little-endian value.
func (p *PSRAM) Write16(addr uint32, v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return p.write(addr, b[:])
}

// Write32 writes a little-endian value.
func (p *PSRAM) Write32(addr uint32, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return p.write(addr, b[:])
}

// Read8 implements the device.SampleMemory interface.
func (p *PSRAM) Read8(addr uint32) (uint8, error) {
	var b [1]byte
	err := p.read(addr, b[:])
	return b[0], err
}

// Read16 reads a little-endian value.
func (p *PSRAM) Read16(addr uint32) (uint16, error) {
	var b [2]byte
	err := p.read(addr, b[:])
	return binary.LittleEndian.Uint16(b[:]), err
}

// Read32 reads a little-endian value.
func (p *PSRAM) Read32(addr uint32) (uint32, error) {
	var b [4]byte
	err := p.read(addr, b[:])
	return binary.LittleEndian.Uint32(b[:]), err
}
