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

// Package gus emulates the host interface of a Gravis Ultrasound. Ports are
// decoded relative to the card's I/O base (0x240 by default), with the
// canonical port numbers used throughout the package being those of a card
// at base 0x200:
//
//	0x200  mix control (write)
//	0x206  IRQ status (read)
//	0x208  timer control / AdLib command
//	0x209  timer data (write)
//	0x20a  AdLib command readback (read)
//	0x20b  IRQ/DMA control (write)
//	0x302  voice select
//	0x303  register select
//	0x304  data low
//	0x305  data high
//	0x307  DRAM I/O
//
// The GF1 register file and the on-board DRAM are emulated. Synthesis is not
// and RenderSound() outputs silence.
//
// DRAM is held locally so that peeks at 0x307 can be answered inside the bus
// cycle. Pokes are also queued for the remote sample memory and are written
// by FlushDRAM(), which must be called regularly from a core other than the
// bus core.
package gus
