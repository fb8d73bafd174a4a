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

package gpio

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/pigus/pigus/hardware/isa"
)

// SimOp is the kind of operation recorded by Sim.
type SimOp int

// List of valid SimOp values.
const (
	SimConfigure SimOp = iota
	SimDrive
	SimRelease
)

func (op SimOp) String() string {
	switch op {
	case SimConfigure:
		return "configure"
	case SimDrive:
		return "drive"
	case SimRelease:
		return "release"
	}
	return "unknown"
}

// SimEntry records an operation made by the card on the simulated lines.
type SimEntry struct {
	Op    SimOp
	Value uint8

	// the host side of the bus at the time of the operation
	Host isa.Sample
}

func (e SimEntry) String() string {
	return fmt.Sprintf("%s %#02x [%s]", e.Op, e.Value, e.Host)
}

// Sim implements the Lines and EdgeSource interfaces without hardware. The
// host side of the bus is set with the Set() function.
type Sim struct {
	host atomic.Uint32

	// driven data. the top bit indicates that the data lines are outputs
	driven atomic.Uint32

	crit     sync.Mutex
	history  []SimEntry
	handle   func(Event)
	watched  map[int]bool
	watching chan struct{}
}

const simDriving = 1 << 31

// NewSim is the preferred method of initialisation for the Sim type. The bus
// begins idle with both strobes high.
func NewSim() *Sim {
	s := &Sim{
		watching: make(chan struct{}),
	}
	s.host.Store(uint32(isa.MakeSample(false, false, 0, 0)))
	return s
}

func (s *Sim) record(op SimOp, value uint8) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.history = append(s.history, SimEntry{Op: op, Value: value, Host: isa.Sample(s.host.Load())})
}

// History returns a copy of the operations recorded so far.
func (s *Sim) History() []SimEntry {
	s.crit.Lock()
	defer s.crit.Unlock()
	h := make([]SimEntry, len(s.history))
	copy(h, s.history)
	return h
}

// Set the host side of the bus. Edges on watched lines are reported to the
// Watch() handler before Set() returns.
func (s *Sim) Set(sample isa.Sample) {
	prev := isa.Sample(s.host.Swap(uint32(sample)))

	s.crit.Lock()
	handle := s.handle
	watched := s.watched
	s.crit.Unlock()

	if handle == nil {
		return
	}

	for _, l := range []int{isa.LineIOW, isa.LineIOR} {
		if !watched[l] {
			continue
		}
		bit := isa.Sample(1 << uint(l))
		if prev&bit != sample&bit {
			handle(Event{
				Line:    l,
				Falling: sample&bit == 0,
				Sample:  s.Read(),
			})
		}
	}
}

// Driving returns true and the value on the data lines if the card is
// driving the data bus.
func (s *Sim) Driving() (bool, uint8) {
	d := s.driven.Load()
	return d&simDriving == simDriving, uint8(d)
}

// Configure implements the Lines interface.
func (s *Sim) Configure(levelShifter int) error {
	s.record(SimConfigure, uint8(levelShifter))
	return nil
}

// Read implements the Lines interface. The data lines show the driven value
// when the card is driving the bus.
func (s *Sim) Read() isa.Sample {
	h := isa.Sample(s.host.Load())
	if ok, v := s.Driving(); ok {
		h = (h &^ isa.DataLines) | isa.Sample(v)<<isa.LineData0
	}
	return h
}

// DriveData implements the Lines interface.
func (s *Sim) DriveData(value uint8) {
	s.driven.Store(simDriving | uint32(value))
	s.record(SimDrive, value)
}

// ReleaseData implements the Lines interface.
func (s *Sim) ReleaseData() {
	s.driven.Store(0)
	s.record(SimRelease, 0)
}

// Close implements the Lines interface.
func (s *Sim) Close() error {
	s.driven.Store(0)
	return nil
}

// Watching returns a channel that is closed once Watch() has been called.
func (s *Sim) Watching() <-chan struct{} {
	return s.watching
}

// Watch implements the EdgeSource interface. Only the strobe lines can be
// watched.
func (s *Sim) Watch(ctx context.Context, lines []int, handle func(Event)) error {
	s.crit.Lock()
	if s.handle != nil {
		s.crit.Unlock()
		return fmt.Errorf("gpio: sim: already watching")
	}
	s.handle = handle
	s.watched = make(map[int]bool)
	for _, l := range lines {
		s.watched[l] = true
	}
	close(s.watching)
	s.crit.Unlock()

	<-ctx.Done()

	s.crit.Lock()
	s.handle = nil
	s.crit.Unlock()

	return nil
}
