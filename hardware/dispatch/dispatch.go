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
	"sync"
	"time"

	"github.com/pigus/pigus/hardware/device"
	"github.com/pigus/pigus/hardware/isa"
	"github.com/pigus/pigus/hardware/isa/edge"
)

// Default timings.
const (
	DefaultSettle  = time.Microsecond
	DefaultMaxHold = 10 * time.Microsecond
)

// Dispatcher passes bus cycles to the device.
type Dispatcher struct {
	dev   device.Device
	ports *PortMap
	base  uint16
	claim *Claim

	settle  time.Duration
	maxHold time.Duration

	stats Stats

	// device access is serialised when more than one goroutine dispatches
	shared bool
	crit   sync.Mutex
}

// NewDispatcher is the preferred method of initialisation for the Dispatcher
// type.
func NewDispatcher(dev device.Device, ports *PortMap, base uint16, bus DataBus) *Dispatcher {
	return &Dispatcher{
		dev:     dev,
		ports:   ports,
		base:    base,
		claim:   NewClaim(bus),
		settle:  DefaultSettle,
		maxHold: DefaultMaxHold,
	}
}

// SetTiming changes the settle and maximum hold times. It must not be called
// while the dispatcher is in use.
func (d *Dispatcher) SetTiming(settle time.Duration, maxHold time.Duration) {
	d.settle = settle
	d.maxHold = maxHold
}

// SetShared serialises access to the device. It is required when writes
// and reads are dispatched from different goroutines. It must not be called
// while the dispatcher is in use.
func (d *Dispatcher) SetShared(shared bool) {
	d.shared = shared
}

// BasePort returns the base port used to decode samples.
func (d *Dispatcher) BasePort() uint16 {
	return d.base
}

// Stats returns a snapshot of the dispatcher's running totals.
func (d *Dispatcher) Stats() StatsSnapshot {
	return d.stats.Snapshot()
}

// Activity returns the number of writes passed to the device. It increases
// monotonically and can be read from any core.
func (d *Dispatcher) Activity() uint64 {
	return d.stats.writes.Load()
}

// Dispatch the edges of a decoded sample. Edges are handled in edge.Order.
func (d *Dispatcher) Dispatch(e edge.Edges, dec isa.Decoded) {
	for _, o := range edge.Order {
		if e&o == 0 {
			continue
		}
		switch o {
		case edge.ReadEnd:
			d.claim.Release()
		case edge.WriteBegin:
			d.write(dec)
		case edge.ReadBegin:
			d.read(dec)
		}
	}
}

func (d *Dispatcher) write(dec isa.Decoded) {
	w, ok := d.ports.Write(dec.Offset)
	if !ok {
		d.stats.ignored.Add(1)
		return
	}
	if d.shared {
		d.crit.Lock()
		d.dev.WriteToPort(d.base+dec.Offset, dec.Data, w)
		d.crit.Unlock()
	} else {
		d.dev.WriteToPort(d.base+dec.Offset, dec.Data, w)
	}
	d.stats.writes.Add(1)
}

func (d *Dispatcher) read(dec isa.Decoded) {
	// a missed read end leaves the bus claimed
	if d.claim.Release() {
		d.stats.forced.Add(1)
	}

	w, ok := d.ports.Read(dec.Offset)
	if !ok {
		d.stats.ignored.Add(1)
		return
	}

	var v uint8
	if d.shared {
		d.crit.Lock()
		v = d.dev.ReadFromPort(d.base+dec.Offset, w)
		d.crit.Unlock()
	} else {
		v = d.dev.ReadFromPort(d.base+dec.Offset, w)
	}

	d.claim.Acquire(v)
	spin(d.settle)
	d.stats.reads.Add(1)
}

// Expire releases the data bus if it has been claimed for longer than the
// maximum hold time.
func (d *Dispatcher) Expire() {
	if d.claim.Expired(d.maxHold) && d.claim.Release() {
		d.stats.expired.Add(1)
	}
}

// Release the data bus if it is claimed. Every task that dispatches should
// defer a call to Release().
func (d *Dispatcher) Release() {
	d.claim.Release()
}

// Holding returns true if the data bus is claimed.
func (d *Dispatcher) Holding() bool {
	return d.claim.Held()
}

// spin for the duration without yielding.
func spin(t time.Duration) {
	if t <= 0 {
		return
	}
	start := time.Now()
	for time.Since(start) < t {
	}
}
