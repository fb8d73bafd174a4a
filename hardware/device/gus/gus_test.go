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

package gus_test

import (
	"fmt"
	"testing"

	"github.com/go-test/deep"
	"github.com/pigus/pigus/curated"
	"github.com/pigus/pigus/hardware/device"
	"github.com/pigus/pigus/hardware/device/gus"
	"github.com/pigus/pigus/test"
)

type memory struct {
	data map[uint32]uint8
	fail bool
}

func (m *memory) Read8(addr uint32) (uint8, error) {
	return m.data[addr], nil
}

func (m *memory) Write8(addr uint32, v uint8) error {
	if m.fail {
		return fmt.Errorf("link down")
	}
	m.data[addr] = v
	return nil
}

func (m *memory) Size() uint32 {
	return 8 << 20
}

func newGUS(t *testing.T, mem device.SampleMemory) *gus.GUS {
	t.Helper()
	g := gus.NewGUS(gus.DefaultBase, mem)
	test.DemandSuccess(t, g.Initialize())
	return g
}

// write a GF1 register through the host interface
func setReg(g *gus.GUS, reg uint8, value uint16) {
	g.WriteToPort(0x343, reg, device.Byte)
	g.WriteToPort(0x344, uint8(value), device.Byte)
	g.WriteToPort(0x345, uint8(value>>8), device.Byte)
}

func getReg(g *gus.GUS, reg uint8) uint16 {
	g.WriteToPort(0x343, reg, device.Byte)
	return uint16(g.ReadFromPort(0x344, device.Byte)) | uint16(g.ReadFromPort(0x345, device.Byte))<<8
}

func TestLayout(t *testing.T) {
	g := gus.NewGUS(0x240, nil)
	l := g.Layout()
	test.Equate(t, l.BasePort, 0x040)
	test.Equate(t, l.Port(0x302), 0x342)
	test.Equate(t, len(l.Write), 9)
	test.Equate(t, len(l.Read), 8)
}

func TestInvalidBase(t *testing.T) {
	for _, b := range []uint16{0x200, 0x270, 0x245} {
		err := gus.NewGUS(b, nil).Initialize()
		test.ExpectedSuccess(t, curated.Is(err, gus.BaseError))
	}
	test.ExpectedSuccess(t, gus.NewGUS(0x220, nil).Initialize())
}

func TestLatches(t *testing.T) {
	g := newGUS(t, nil)

	g.WriteToPort(0x248, 0x04, device.Byte)
	g.WriteToPort(0x249, 0x60, device.Byte)

	// DMA latch then IRQ latch
	g.WriteToPort(0x240, 0x00, device.Byte)
	g.WriteToPort(0x24b, 0x11, device.Byte)
	g.WriteToPort(0x240, 0x40, device.Byte)
	g.WriteToPort(0x24b, 0x22, device.Byte)

	g.WriteToPort(0x342, 0x25, device.Byte)

	want := gus.Latches{
		MixControl:   0x40,
		IRQControl:   0x22,
		DMAControl:   0x11,
		AdLibCommand: 0x04,
		TimerData:    0x60,
		Voice:        0x05,
	}
	if diff := deep.Equal(g.Latches(), want); diff != nil {
		t.Error(diff)
	}

	test.Equate(t, g.ReadFromPort(0x24a, device.Byte), 0x04)
	test.Equate(t, g.ReadFromPort(0x342, device.Byte), 0x05)
	test.Equate(t, g.ReadFromPort(0x246, device.Byte), 0x00)

	// not a port of the card
	test.Equate(t, g.ReadFromPort(0x241, device.Byte), 0xff)
}

func TestVoiceRegisters(t *testing.T) {
	g := newGUS(t, nil)

	g.WriteToPort(0x342, 3, device.Byte)
	setReg(g, 0x01, 0x1234)
	g.WriteToPort(0x342, 4, device.Byte)
	setReg(g, 0x01, 0x5678)

	g.WriteToPort(0x342, 3, device.Byte)
	test.Equate(t, getReg(g, 0x81), 0x1234)
	g.WriteToPort(0x342, 4, device.Byte)
	test.Equate(t, getReg(g, 0x81), 0x5678)

	// reset clears voice registers
	setReg(g, 0x4c, 0x0000)
	test.Equate(t, getReg(g, 0x81), 0x0000)
}

func TestActiveVoices(t *testing.T) {
	g := newGUS(t, nil)
	test.Equate(t, g.ActiveVoices(), 14)

	setReg(g, 0x0e, 0xdf00)
	test.Equate(t, g.ActiveVoices(), 32)
	test.Equate(t, getReg(g, 0x8e)>>8, 0xdf)

	// fewer than 14 is not possible
	setReg(g, 0x0e, 0xc200)
	test.Equate(t, g.ActiveVoices(), 14)
}

func TestDRAM(t *testing.T) {
	mem := &memory{data: make(map[uint32]uint8)}
	g := newGUS(t, mem)

	setReg(g, 0x43, 0x0010)
	setReg(g, 0x44, 0x0500)
	g.WriteToPort(0x347, 0xab, device.Byte)
	test.Equate(t, g.ReadFromPort(0x347, device.Byte), 0xab)

	setReg(g, 0x43, 0x0011)
	g.WriteToPort(0x347, 0xcd, device.Byte)

	n, err := g.FlushDRAM()
	test.ExpectedSuccess(t, err)
	test.Equate(t, n, 2)

	want := map[uint32]uint8{0x50010: 0xab, 0x50011: 0xcd}
	if diff := deep.Equal(mem.data, want); diff != nil {
		t.Error(diff)
	}

	// nothing left to flush
	n, _ = g.FlushDRAM()
	test.Equate(t, n, 0)

	mem.fail = true
	g.WriteToPort(0x347, 0xef, device.Byte)
	_, err = g.FlushDRAM()
	test.ExpectedSuccess(t, curated.Is(err, gus.DRAMError))
}

func TestDroppedPokes(t *testing.T) {
	mem := &memory{data: make(map[uint32]uint8)}
	g := newGUS(t, mem)

	for i := 0; i < 5000; i++ {
		g.WriteToPort(0x347, uint8(i), device.Byte)
	}
	test.Equate(t, g.DroppedPokes(), uint64(5000-4096))
}

func TestRenderSilence(t *testing.T) {
	g := newGUS(t, nil)
	buf := []int16{1, 2, 3, 4}
	g.RenderSound(buf)
	if diff := deep.Equal(buf, []int16{0, 0, 0, 0}); diff != nil {
		t.Error(diff)
	}
}
