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
	"fmt"
	"sync/atomic"
)

// Stats are the running totals of the dispatcher.
type Stats struct {
	writes  atomic.Uint64
	reads   atomic.Uint64
	ignored atomic.Uint64

	// the data bus was still claimed when a new read cycle began
	forced atomic.Uint64

	// the data bus was released because it was held for too long
	expired atomic.Uint64
}

// StatsSnapshot is a copy of Stats at an instant.
type StatsSnapshot struct {
	Writes  uint64
	Reads   uint64
	Ignored uint64
	Forced  uint64
	Expired uint64
}

func (s StatsSnapshot) String() string {
	return fmt.Sprintf("writes=%d reads=%d ignored=%d forced=%d expired=%d", s.Writes, s.Reads, s.Ignored, s.Forced, s.Expired)
}

// Snapshot returns the current totals.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Writes:  s.writes.Load(),
		Reads:   s.reads.Load(),
		Ignored: s.ignored.Load(),
		Forced:  s.forced.Load(),
		Expired: s.expired.Load(),
	}
}
