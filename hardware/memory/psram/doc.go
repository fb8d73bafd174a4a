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

// Package psram drives the SPI pseudo-static RAM that holds the card's sample
// memory. Chips such as the APS6404L, ESP-PSRAM64 and LY68L6400 share the
// same command set:
//
//	0x66        reset enable
//	0x99        reset
//	0x02 a a a  write, followed by data
//	0x03 a a a  read, followed by data
//	0x0b a a a  fast read, followed by one dummy byte and then data
//
// Addresses are 24 bits and sent most significant byte first. Multi-byte
// values are little-endian. Every command is a single chip-select frame,
// which is a single call to Link.Transfer().
//
// Spidev is the Link for the Linux spidev driver. Chip is a simulated memory
// that implements Link and is used by tests and by the "sim" device setting.
package psram
