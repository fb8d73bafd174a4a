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

package gus

import (
	"fmt"
	"sync/atomic"

	"github.com/pigus/pigus/curated"
	"github.com/pigus/pigus/hardware/device"
)

// Sentinal error patterns.
const (
	BaseError = "gus: invalid I/O base (%#03x)"
	DRAMError = "gus: dram: %v"
)

// DefaultBase is the I/O base of a GUS with factory jumper settings.
const DefaultBase = 0x240

// DRAMSize is the largest amount of DRAM a GUS can address.
const DRAMSize = 1 << 20

// canonical ports are relative to this base.
const canonicalBase = 0x200

// WritePorts are the canonical ports that the card responds to on a write.
var WritePorts = []uint16{0x200, 0x208, 0x209, 0x20b, 0x302, 0x303, 0x304, 0x305, 0x307}

// ReadPorts are the canonical ports that the card responds to on a read.
var ReadPorts = []uint16{0x206, 0x208, 0x20a, 0x302, 0x303, 0x304, 0x305, 0x307}

// GF1 registers.
const (
	regActiveVoices = 0x0e
	regDMAControl   = 0x41
	regDMAStart     = 0x42
	regDRAMLow      = 0x43
	regDRAMHigh     = 0x44
	regTimerControl = 0x45
	regTimer1       = 0x46
	regTimer2       = 0x47
	regReset        = 0x4c

	// registers are read with bit 7 set
	regRead = 0x80

	numVoices    = 32
	numVoiceRegs = 16

	minActiveVoices = 14
)

// a queued write to the remote sample memory.
type poke struct {
	addr  uint32
	value uint8
}

const pendingPokes = 4096

// GUS is the emulated card.
type GUS struct {
	ioBase uint16
	mem    device.SampleMemory

	dram    []uint8
	pending chan poke

	// pokes dropped because the queue was full
	dropped atomic.Uint64

	mixControl   uint8
	irqControl   uint8
	dmaControl   uint8
	adlibCommand uint8
	timerData    uint8

	voice    uint8
	register uint8

	voices       [numVoices][numVoiceRegs]uint16
	globals      [256]uint16
	activeVoices int
}

// NewGUS is the preferred method of initialisation for the GUS type. The mem
// argument can be nil in which case DRAM is local only.
func NewGUS(ioBase uint16, mem device.SampleMemory) *GUS {
	return &GUS{
		ioBase:       ioBase,
		mem:          mem,
		pending:      make(chan poke, pendingPokes),
		activeVoices: minActiveVoices,
	}
}

func (g *GUS) String() string {
	return fmt.Sprintf("GUS at %#03x (%d voices, %dk DRAM)", g.ioBase, g.activeVoices, len(g.dram)/1024)
}

// Layout returns the bus layout of the card.
func (g *GUS) Layout() device.Layout {
	return device.Layout{
		Name:     "Gravis Ultrasound",
		BasePort: g.ioBase - canonicalBase,
		Write:    WritePorts,
		Read:     ReadPorts,
	}
}

// Initialize implements the device.Device interface.
func (g *GUS) Initialize() error {
	if g.ioBase < 0x210 || g.ioBase > 0x260 || g.ioBase&0x0f != 0 {
		return curated.Errorf(BaseError, g.ioBase)
	}

	size := uint32(DRAMSize)
	if g.mem != nil && g.mem.Size() < size {
		size = g.mem.Size()
	}
	g.dram = make([]uint8, size)

	g.reset()

	return nil
}

func (g *GUS) reset() {
	for v := range g.voices {
		for r := range g.voices[v] {
			g.voices[v][r] = 0
		}
	}
	g.activeVoices = minActiveVoices
}

// canonical converts an absolute port into a canonical port.
func (g *GUS) canonical(port uint16) uint16 {
	return port - (g.ioBase - canonicalBase)
}

// dramAddress returns the address formed by registers 0x43 and 0x44.
func (g *GUS) dramAddress() uint32 {
	lo := uint32(g.globals[regDRAMLow])
	hi := uint32(g.globals[regDRAMHigh]>>8) & 0x0f
	return hi<<16 | lo
}

// WriteToPort implements the device.Device interface.
func (g *GUS) WriteToPort(port uint16, value uint8, width device.Width) {
	switch g.canonical(port) {
	case 0x200:
		g.mixControl = value
	case 0x208:
		g.adlibCommand = value
	case 0x209:
		g.timerData = value
	case 0x20b:
		// bit 6 of the mix control register selects the IRQ latch
		if g.mixControl&0x40 == 0x40 {
			g.irqControl = value
		} else {
			g.dmaControl = value
		}
	case 0x302:
		g.voice = value & (numVoices - 1)
	case 0x303:
		g.register = value
	case 0x304:
		// 16bit transfers are not supported by the interface board. the low
		// byte is latched until the high byte is written
		r := g.reg()
		*r = (*r & 0xff00) | uint16(value)
	case 0x305:
		r := g.reg()
		*r = (*r & 0x00ff) | uint16(value)<<8
		g.commit()
	case 0x307:
		g.poke(g.dramAddress(), value)
	}
}

// ReadFromPort implements the device.Device interface.
func (g *GUS) ReadFromPort(port uint16, width device.Width) uint8 {
	switch g.canonical(port) {
	case 0x206:
		// no interrupts are ever pending
		return 0x00
	case 0x208:
		// timers are latched but never expire
		return 0x00
	case 0x20a:
		return g.adlibCommand
	case 0x302:
		return g.voice
	case 0x303:
		return g.register
	case 0x304:
		return uint8(g.readReg())
	case 0x305:
		return uint8(g.readReg() >> 8)
	case 0x307:
		return g.peek(g.dramAddress())
	}
	return 0xff
}

// reg returns the register selected for writing.
func (g *GUS) reg() *uint16 {
	if g.register < numVoiceRegs && g.register != regActiveVoices {
		return &g.voices[g.voice][g.register]
	}
	return &g.globals[g.register]
}

// commit acts on register writes that have side effects.
func (g *GUS) commit() {
	switch g.register {
	case regActiveVoices:
		n := int(g.globals[regActiveVoices]>>8)&0x1f + 1
		if n < minActiveVoices {
			n = minActiveVoices
		}
		g.activeVoices = n
	case regReset:
		// bit 0 low holds the GF1 in reset
		if g.globals[regReset]&0x0100 == 0 {
			g.reset()
		}
	}
}

// readReg returns the value of the register selected for reading.
func (g *GUS) readReg() uint16 {
	r := g.register
	switch {
	case r == regRead|regActiveVoices:
		return uint16(0xc0|(g.activeVoices-1)) << 8
	case r == regRead|0x0f:
		// IRQ source. no voice has an IRQ pending
		return uint16(0xe0|g.voice) << 8
	case r >= regRead && r < regRead|numVoiceRegs:
		return g.voices[g.voice][r&^regRead]
	}
	return g.globals[r]
}

func (g *GUS) peek(addr uint32) uint8 {
	if addr >= uint32(len(g.dram)) {
		return 0xff
	}
	return g.dram[addr]
}

func (g *GUS) poke(addr uint32, value uint8) {
	if addr >= uint32(len(g.dram)) {
		return
	}
	g.dram[addr] = value

	if g.mem == nil {
		return
	}

	select {
	case g.pending <- poke{addr: addr, value: value}:
	default:
		g.dropped.Add(1)
	}
}

// FlushDRAM writes queued pokes to the remote sample memory. It returns the
// number of pokes written. It does not block waiting for new pokes.
func (g *GUS) FlushDRAM() (int, error) {
	if g.mem == nil {
		return 0, nil
	}

	n := 0
	for {
		select {
		case p := <-g.pending:
			if err := g.mem.Write8(p.addr, p.value); err != nil {
				return n, curated.Errorf(DRAMError, err)
			}
			n++
		default:
			return n, nil
		}
	}
}

// DroppedPokes returns the number of pokes that were not queued for the
// remote sample memory.
func (g *GUS) DroppedPokes() uint64 {
	return g.dropped.Load()
}

// Latches is a snapshot of the card's host interface latches.
type Latches struct {
	MixControl   uint8
	IRQControl   uint8
	DMAControl   uint8
	AdLibCommand uint8
	TimerData    uint8
	Voice        uint8
	Register     uint8
}

// Latches returns the current state of the host interface latches.
func (g *GUS) Latches() Latches {
	return Latches{
		MixControl:   g.mixControl,
		IRQControl:   g.irqControl,
		DMAControl:   g.dmaControl,
		AdLibCommand: g.adlibCommand,
		TimerData:    g.timerData,
		Voice:        g.voice,
		Register:     g.register,
	}
}

// ActiveVoices returns the number of active voices.
func (g *GUS) ActiveVoices() int {
	return g.activeVoices
}

// RenderSound implements the device.Device interface.
func (g *GUS) RenderSound(buffer []int16) {
	clear(buffer)
}
