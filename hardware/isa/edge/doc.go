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

// Package edge classifies changes in the IOW and IOR strobes into bus cycle
// edges.
//
// In software-edge mode a Tracker remembers the strobe levels from the
// previous sample and reports every edge seen between that sample and the
// current one. Edges from one sample are reported together, as a single
// Edges value, and must be processed in the order given by Order:
//
//	ReadEnd, WriteEnd, WriteBegin, ReadBegin
//
// Cycle ends are processed before cycle begins so that the data bus is
// released before a new cycle can claim it.
//
// In hardware-edge mode the GPIO driver reports each edge as it happens and
// Passthrough() converts the event into an Edges value without any state.
package edge
