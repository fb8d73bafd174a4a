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

package psram_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
	"github.com/pigus/pigus/curated"
	"github.com/pigus/pigus/hardware/memory/psram"
	"github.com/pigus/pigus/test"
)

const chipSize = 1 << 16

func newPSRAM() (*psram.PSRAM, *psram.Chip) {
	chip := psram.NewChip(chipSize)
	return psram.NewPSRAM(chip, chipSize), chip
}

func TestRoundTrip(t *testing.T) {
	for _, fast := range []bool{false, true} {
		p, _ := newPSRAM()
		p.SetFastRead(fast)

		test.ExpectedSuccess(t, p.Write8(0x100, 0xab))
		v8, err := p.Read8(0x100)
		test.ExpectedSuccess(t, err)
		test.Equate(t, v8, 0xab)

		test.ExpectedSuccess(t, p.Write16(0x200, 0xbeef))
		v16, err := p.Read16(0x200)
		test.ExpectedSuccess(t, err)
		test.Equate(t, v16, 0xbeef)

		test.ExpectedSuccess(t, p.Write32(0x300, 0xdeadbeef))
		v32, err := p.Read32(0x300)
		test.ExpectedSuccess(t, err)
		test.Equate(t, v32, uint32(0xdeadbeef))

		// little endian
		v8, _ = p.Read8(0x300)
		test.Equate(t, v8, 0xef)
		v8, _ = p.Read8(0x303)
		test.Equate(t, v8, 0xde)
	}
}

func TestWireFormat(t *testing.T) {
	p, chip := newPSRAM()

	test.ExpectedSuccess(t, p.Write8(0x012345&(chipSize-1), 0x11))
	test.ExpectedSuccess(t, p.Write32(0x001234, 0x44332211))
	_, _ = p.Read16(0x001234)
	p.SetFastRead(true)
	_, _ = p.Read8(0x001234)

	want := [][]byte{
		{0x02, 0x00, 0x23, 0x45, 0x11},
		{0x02, 0x00, 0x12, 0x34, 0x11, 0x22, 0x33, 0x44},
		{0x03, 0x00, 0x12, 0x34, 0x00, 0x00},
		{0x0b, 0x00, 0x12, 0x34, 0x00, 0x00},
	}
	if diff := deep.Equal(chip.Frames(), want); diff != nil {
		t.Errorf("%v\n%s", diff, spew.Sdump(chip.Frames()))
	}
}

func TestAddressRange(t *testing.T) {
	p, _ := newPSRAM()
	test.ExpectedSuccess(t, p.Write8(chipSize-1, 0))
	test.ExpectedSuccess(t, curated.Is(p.Write16(chipSize-1, 0), psram.AddressError))
	_, err := p.Read32(chipSize - 2)
	test.ExpectedSuccess(t, curated.Is(err, psram.AddressError))
}

func TestReset(t *testing.T) {
	p, chip := newPSRAM()

	var delays []time.Duration
	p.SetDelay(func(d time.Duration) {
		delays = append(delays, d)
	})

	// timings below the minimum are raised
	test.ExpectedSuccess(t, p.Reset(psram.Timings{}))
	test.Equate(t, chip.Resets(), 1)

	want := []time.Duration{150 * time.Microsecond, 150 * time.Microsecond, 100 * time.Microsecond}
	if diff := deep.Equal(delays, want); diff != nil {
		t.Error(diff)
	}
	if diff := deep.Equal(chip.Frames(), [][]byte{{0x66}, {0x99}}); diff != nil {
		t.Error(diff)
	}

	// longer timings are kept
	delays = delays[:0]
	test.ExpectedSuccess(t, p.Reset(psram.Timings{PowerUp: time.Millisecond, Gap: 200 * time.Microsecond}))
	want = []time.Duration{time.Millisecond, 200 * time.Microsecond, 100 * time.Microsecond}
	if diff := deep.Equal(delays, want); diff != nil {
		t.Error(diff)
	}
}

func TestResetNeedsEnable(t *testing.T) {
	chip := psram.NewChip(16)
	rx := make([]byte, 1)
	test.ExpectedSuccess(t, chip.Transfer([]byte{0x99}, rx))
	test.Equate(t, chip.Resets(), 0)
	test.ExpectedSuccess(t, chip.Transfer([]byte{0x66}, rx))
	test.ExpectedSuccess(t, chip.Transfer([]byte{0x99}, rx))
	test.Equate(t, chip.Resets(), 1)
}

type brokenLink struct{}

func (brokenLink) Transfer(tx []byte, rx []byte) error {
	return fmt.Errorf("no chip")
}

func TestLinkError(t *testing.T) {
	p := psram.NewPSRAM(brokenLink{}, chipSize)
	p.SetDelay(func(time.Duration) {})
	test.ExpectedSuccess(t, curated.Is(p.Reset(psram.MinTimings), psram.LinkError))
	test.ExpectedSuccess(t, curated.Is(p.Write8(0, 0), psram.LinkError))
}

func TestCheck(t *testing.T) {
	p, _ := newPSRAM()
	res, err := p.Check(0x1000, 0x100)
	test.ExpectedSuccess(t, err)

	want := psram.CheckResult{Start: 0x1000, Length: 0x100, Bytes: 0x100, Words: 0x80, Dwords: 0x40}
	if diff := deep.Equal(res, want); diff != nil {
		t.Error(diff)
	}

	_, err = p.Check(chipSize-0x10, 0x20)
	test.ExpectedSuccess(t, curated.Is(err, psram.AddressError))
}
