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

package edge

import (
	"strings"

	"github.com/pigus/pigus/hardware/isa"
)

// Edges is a set of bus cycle edges.
type Edges uint8

// List of valid Edges values.
const (
	ReadEnd Edges = 1 << iota
	WriteEnd
	WriteBegin
	ReadBegin

	// no edges
	None Edges = 0

	// every edge
	All = ReadEnd | WriteEnd | WriteBegin | ReadBegin

	// edges of the write strobe
	Write = WriteBegin | WriteEnd

	// edges of the read strobe
	Read = ReadBegin | ReadEnd
)

// Order is the order in which edges from a single sample are processed.
var Order = [...]Edges{ReadEnd, WriteEnd, WriteBegin, ReadBegin}

// Has returns true if every edge in f is in the set.
func (e Edges) Has(f Edges) bool {
	return e&f == f && f != None
}

func (e Edges) String() string {
	if e == None {
		return "none"
	}

	s := make([]string, 0, len(Order))
	for _, o := range Order {
		if e&o == o {
			switch o {
			case ReadEnd:
				s = append(s, "read end")
			case WriteEnd:
				s = append(s, "write end")
			case WriteBegin:
				s = append(s, "write begin")
			case ReadBegin:
				s = append(s, "read begin")
			}
		}
	}
	return strings.Join(s, ", ")
}

// State records the strobe levels of the most recent sample. A value of true
// means the strobe is asserted.
type State struct {
	Write bool
	Read  bool
}

// Tracker reports edges of the bus strobes from one sample to the next. It is
// owned by the bus core and has no locking.
type Tracker struct {
	state State

	// edges outside the mask are never reported
	mask Edges
}

// NewTracker is the preferred method of initialisation for the Tracker type.
// The mask argument limits the edges that are reported. Both strobes are
// assumed to be idle before the first sample.
func NewTracker(mask Edges) *Tracker {
	return &Tracker{mask: mask}
}

// State returns the strobe levels from the most recent call to Classify().
func (tr *Tracker) State() State {
	return tr.state
}

// Reset the tracker to the idle state.
func (tr *Tracker) Reset() {
	tr.state = State{}
}

// Classify the strobe changes between the previous sample and this one. The
// state is always updated even for edges outside the mask.
func (tr *Tracker) Classify(d isa.Decoded) Edges {
	var e Edges

	if d.WriteStrobe != tr.state.Write {
		if d.WriteStrobe {
			e |= WriteBegin
		} else {
			e |= WriteEnd
		}
	}

	if d.ReadStrobe != tr.state.Read {
		if d.ReadStrobe {
			e |= ReadBegin
		} else {
			e |= ReadEnd
		}
	}

	tr.state.Write = d.WriteStrobe
	tr.state.Read = d.ReadStrobe

	return e & tr.mask
}

// Passthrough converts a hardware edge event on a strobe line into an Edges
// value. Lines other than IOW and IOR produce no edges.
func Passthrough(line int, falling bool) Edges {
	switch line {
	case isa.LineIOW:
		if falling {
			return WriteBegin
		}
		return WriteEnd
	case isa.LineIOR:
		if falling {
			return ReadBegin
		}
		return ReadEnd
	}
	return None
}
