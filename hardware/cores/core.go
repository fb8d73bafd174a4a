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

package cores

import "fmt"

// Core identifies one of the card's processor cores.
type Core int

// List of valid Core values.
const (
	BusIOCore Core = iota
	AudioCore
	BookkeepingCore
	NumCores
)

func (c Core) String() string {
	switch c {
	case BusIOCore:
		return "bus"
	case AudioCore:
		return "audio"
	case BookkeepingCore:
		return "bookkeeping"
	}
	return fmt.Sprintf("core %d", int(c))
}

func (c Core) valid() bool {
	return c >= BusIOCore && c < NumCores
}

// Signal is the value sent from one core to another.
type Signal int

// List of signals. The IOW and IOR values are posted by edge handlers when
// the bus is serviced outside the bus core.
const (
	SignalShutdown Signal = 1
	SignalStats    Signal = 2
	SignalIOW      Signal = 10
	SignalIOR      Signal = 11
)

func (s Signal) String() string {
	switch s {
	case SignalShutdown:
		return "shutdown"
	case SignalStats:
		return "stats"
	case SignalIOW:
		return "iow"
	case SignalIOR:
		return "ior"
	}
	return fmt.Sprintf("signal %d", int(s))
}
