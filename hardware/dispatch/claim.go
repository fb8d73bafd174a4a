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
	"sync/atomic"
	"time"
)

// DataBus is the part of the GPIO interface that controls the data lines.
type DataBus interface {
	DriveData(value uint8)
	ReleaseData()
}

// Claim is ownership of the data bus. There is at most one owner of the data
// bus at any time. Release() is idempotent and can be called from any
// goroutine.
type Claim struct {
	bus   DataBus
	held  atomic.Bool
	since atomic.Int64
}

// NewClaim is the preferred method of initialisation for the Claim type.
func NewClaim(bus DataBus) *Claim {
	return &Claim{bus: bus}
}

// Acquire the data bus and drive the value. Returns false if the bus was
// already claimed, in which case the existing claim is released first.
func (c *Claim) Acquire(value uint8) bool {
	forced := c.Release()
	c.since.Store(time.Now().UnixNano())
	c.bus.DriveData(value)
	c.held.Store(true)
	return !forced
}

// Release the data bus. Returns true if the bus was claimed.
func (c *Claim) Release() bool {
	if !c.held.CompareAndSwap(true, false) {
		return false
	}
	c.bus.ReleaseData()
	return true
}

// Held returns true if the data bus is claimed.
func (c *Claim) Held() bool {
	return c.held.Load()
}

// Expired returns true if the data bus has been claimed for longer than the
// maximum hold time.
func (c *Claim) Expired(max time.Duration) bool {
	return c.held.Load() && time.Since(time.Unix(0, c.since.Load())) > max
}
