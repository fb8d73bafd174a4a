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

package dispatch_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
	"github.com/pigus/pigus/curated"
	"github.com/pigus/pigus/hardware/device"
	"github.com/pigus/pigus/hardware/dispatch"
	"github.com/pigus/pigus/hardware/isa"
	"github.com/pigus/pigus/hardware/isa/edge"
	"github.com/pigus/pigus/hardware/isa/gpio"
	"github.com/pigus/pigus/test"
)

type access struct {
	Port  uint16
	Value uint8
	Width device.Width
}

// recorder is a device that records every access.
type recorder struct {
	writes []access
	reads  []access
	value  uint8
}

func (r *recorder) Initialize() error { return nil }

func (r *recorder) WriteToPort(port uint16, value uint8, width device.Width) {
	r.writes = append(r.writes, access{Port: port, Value: value, Width: width})
}

func (r *recorder) ReadFromPort(port uint16, width device.Width) uint8 {
	r.reads = append(r.reads, access{Port: port, Value: r.value, Width: width})
	return r.value
}

func (r *recorder) RenderSound(buffer []int16) {}

// bench is a dispatcher driven by a tracker from the simulated lines.
type bench struct {
	sim  *gpio.Sim
	dev  *recorder
	trk  *edge.Tracker
	disp *dispatch.Dispatcher
	base uint16
}

func newBench(t *testing.T, base uint16, write []uint16, read []uint16) *bench {
	t.Helper()
	pm, err := dispatch.NewPortMap(write, read)
	test.DemandSuccess(t, err)

	b := &bench{
		sim:  gpio.NewSim(),
		dev:  &recorder{},
		trk:  edge.NewTracker(edge.All),
		base: base,
	}
	b.disp = dispatch.NewDispatcher(b.dev, pm, base, b.sim)
	b.disp.SetTiming(0, time.Hour)
	return b
}

// set the host lines and poll once
func (b *bench) poll(s isa.Sample) {
	b.sim.Set(s)
	dec := isa.Decode(b.sim.Read(), b.base)
	b.disp.Dispatch(b.trk.Classify(dec), dec)
}

func TestPortMap(t *testing.T) {
	pm, err := dispatch.NewPortMap([]uint16{0x10, 0x302}, []uint16{0x206})
	test.DemandSuccess(t, err)

	w, ok := pm.Write(0x10)
	test.ExpectedSuccess(t, ok)
	test.ExpectedSuccess(t, w == device.Byte)

	_, ok = pm.Write(0x206)
	test.ExpectedFailure(t, ok)
	_, ok = pm.Read(0x206)
	test.ExpectedSuccess(t, ok)
	_, ok = pm.Read(0xffff)
	test.ExpectedFailure(t, ok)

	wr, rd := pm.Offsets()
	if diff := deep.Equal(wr, []uint16{0x10, 0x302}); diff != nil {
		t.Error(diff)
	}
	if diff := deep.Equal(rd, []uint16{0x206}); diff != nil {
		t.Error(diff)
	}

	test.Equate(t, pm.Describe(0x040), "write: 0x050 0x342\nread:  0x246\n")

	_, err = dispatch.NewPortMap([]uint16{0x400}, nil)
	test.ExpectedSuccess(t, curated.Is(err, dispatch.PortMapError))
}

// a write is passed to the device once, no matter how long the strobe is held
func TestWriteScenario(t *testing.T) {
	b := newBench(t, 0x200, []uint16{0x10}, nil)

	b.poll(isa.MakeSample(false, false, 0x210, 0xab))
	for i := 0; i < 5; i++ {
		b.poll(isa.MakeSample(true, false, 0x210, 0xab))
	}
	b.poll(isa.MakeSample(false, false, 0x210, 0xab))

	want := []access{{Port: 0x210, Value: 0xab, Width: device.Byte}}
	if diff := deep.Equal(b.dev.writes, want); diff != nil {
		t.Errorf("%v\n%s", diff, spew.Sdump(b.dev.writes))
	}
	test.Equate(t, b.disp.Stats().Writes, uint64(1))
	test.Equate(t, b.disp.Activity(), uint64(1))
}

// writes to offsets outside the write set never reach the device
func TestWriteFiltering(t *testing.T) {
	writeSet := []uint16{0x200, 0x208, 0x209, 0x20b, 0x302, 0x303, 0x304, 0x305, 0x307}
	inSet := make(map[uint16]bool)
	for _, o := range writeSet {
		inSet[0x040+o] = true
	}

	b := newBench(t, 0x040, writeSet, nil)
	rng := rand.New(rand.NewSource(2600))

	for i := 0; i < 20000; i++ {
		b.poll(isa.Sample(rng.Uint32()))
	}

	test.ExpectedSuccess(t, len(b.dev.writes) > 0)
	for _, w := range b.dev.writes {
		if !inSet[w.Port] {
			t.Fatalf("unexpected write to %#03x", w.Port)
		}
	}
	s := b.disp.Stats()
	test.ExpectedSuccess(t, s.Ignored > 0)
}

// the value is on the data lines before the read strobe is released and the
// lines are released only after the strobe is seen to be released
func TestReadScenario(t *testing.T) {
	b := newBench(t, 0x040, nil, []uint16{0x206})
	b.dev.value = 0x5a

	b.poll(isa.MakeSample(false, false, 0x246, 0))
	b.poll(isa.MakeSample(false, true, 0x246, 0))

	ok, v := b.sim.Driving()
	test.ExpectedSuccess(t, ok)
	test.Equate(t, v, 0x5a)
	test.Equate(t, b.sim.Read().Data(), 0x5a)

	// still held while the strobe is asserted
	b.poll(isa.MakeSample(false, true, 0x246, 0))
	test.ExpectedSuccess(t, b.disp.Holding())

	b.poll(isa.MakeSample(false, false, 0x246, 0))
	test.ExpectedFailure(t, b.disp.Holding())

	h := b.sim.History()
	test.DemandEquality(t, len(h), 2)
	test.ExpectedSuccess(t, h[0].Op == gpio.SimDrive && h[0].Host.IOR())
	test.ExpectedSuccess(t, h[1].Op == gpio.SimRelease && !h[1].Host.IOR())
	test.Equate(t, len(b.dev.reads), 1)
}

// the data bus is never claimed twice and is always released by the end of
// the read cycle
func TestReadReleaseInvariant(t *testing.T) {
	b := newBench(t, 0x040, nil, []uint16{0x206, 0x208, 0x20a, 0x302, 0x303})
	rng := rand.New(rand.NewSource(6502))

	for i := 0; i < 20000; i++ {
		s := isa.Sample(rng.Uint32())
		b.poll(s)
		if !s.IOR() && b.disp.Holding() {
			t.Fatalf("data bus held after read end: %s", s)
		}
	}
	b.disp.Release()

	held := false
	for _, h := range b.sim.History() {
		switch h.Op {
		case gpio.SimDrive:
			if held {
				t.Fatalf("data bus claimed twice")
			}
			held = true
		case gpio.SimRelease:
			held = false
		}
	}
	test.ExpectedFailure(t, held)
}

// a read begin that finds the bus claimed releases it first
func TestForcedRelease(t *testing.T) {
	b := newBench(t, 0x040, nil, []uint16{0x206})

	b.poll(isa.MakeSample(false, true, 0x246, 0))

	// the tracker misses the read end
	b.trk.Reset()
	b.poll(isa.MakeSample(false, true, 0x246, 0))

	test.Equate(t, b.disp.Stats().Forced, uint64(1))
	test.Equate(t, b.disp.Stats().Reads, uint64(2))

	h := b.sim.History()
	test.DemandEquality(t, len(h), 3)
	test.ExpectedSuccess(t, h[1].Op == gpio.SimRelease)
}

func TestMaxHold(t *testing.T) {
	b := newBench(t, 0x040, nil, []uint16{0x206})
	b.disp.SetTiming(0, time.Millisecond)

	b.poll(isa.MakeSample(false, true, 0x246, 0))
	b.disp.Expire()
	test.ExpectedSuccess(t, b.disp.Holding())

	time.Sleep(2 * time.Millisecond)
	b.disp.Expire()
	test.ExpectedFailure(t, b.disp.Holding())
	test.Equate(t, b.disp.Stats().Expired, uint64(1))

	// the read end that follows has nothing to release
	b.poll(isa.MakeSample(false, false, 0x246, 0))
	test.Equate(t, len(b.sim.History()), 2)
}

func TestClaimRelease(t *testing.T) {
	sim := gpio.NewSim()
	c := dispatch.NewClaim(sim)

	test.ExpectedFailure(t, c.Release())
	test.ExpectedSuccess(t, c.Acquire(0x12))
	test.ExpectedFailure(t, c.Acquire(0x34))
	test.ExpectedSuccess(t, c.Release())
	test.ExpectedFailure(t, c.Release())
	test.ExpectedFailure(t, c.Held())
}

func TestSettle(t *testing.T) {
	b := newBench(t, 0x040, nil, []uint16{0x206})
	b.disp.SetTiming(200*time.Microsecond, time.Hour)

	start := time.Now()
	b.poll(isa.MakeSample(false, true, 0x246, 0))
	test.ExpectedSuccess(t, time.Since(start) >= 200*time.Microsecond)
}
