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

// Package gpio gives access to the GPIO lines that connect the card to the
// ISA bus.
//
// The Lines interface is the fast path used by the bus core. On a Raspberry
// Pi it is implemented by BCM, which maps the GPIO registers from
// /dev/gpiomem and reads every line with a single load of the level
// register. The EdgeSource interface reports strobe edges as they happen and
// is implemented by Sysfs, using the kernel's GPIO edge detection.
//
// Sim implements both interfaces without any hardware and is used by tests
// and by the "sim" device setting.
package gpio
