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

// Package isa describes the ISA bus lines as seen by the GPIO header. The
// Sample type is a snapshot of every line, taken with a single read of the
// GPIO level register. Decode() turns a Sample into the strobe states, port
// offset and data byte used by the rest of the card.
//
// The line layout is fixed by the interface board:
//
//	bit  0       IOW (active low)
//	bit  1       IOR (active low)
//	bits 4-11    data D0-D7
//	bits 12-21   address A0-A9
//
// Line 27 enables the level shifter between the 5V bus and the 3.3V GPIO
// header. Other lines are unused.
package isa
