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

	"github.com/pigus/pigus/hardware/isa"
)

// Lines is the interface to the GPIO lines used by the bus core.
type Lines interface {
	// Configure sets every line to input except for the level shifter enable,
	// which is set to output and driven high
	Configure(levelShifter int) error

	// Read every line with a single load
	Read() isa.Sample

	// DriveData places the value on the data lines and then switches them to
	// output. The level is set before the direction so that the bus never
	// sees a stale value
	DriveData(value uint8)

	// ReleaseData switches the data lines back to input
	ReleaseData()

	Close() error
}

// Event is a single edge on a watched line.
type Event struct {
	Line    int
	Falling bool

	// the lines at the time the event was handled
	Sample isa.Sample
}

// EdgeSource reports edges on GPIO lines.
type EdgeSource interface {
	// Watch the lines for edges. The handle function is called for every
	// edge on a watched line. Watch blocks until the context is done or an
	// error occurs
	Watch(ctx context.Context, lines []int, handle func(Event)) error
}
