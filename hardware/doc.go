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

// Package hardware assembles the card from its parts and runs it.
//
// The Card type connects the GPIO lines to the dispatcher and the selected
// device, sets up the remote sample memory and assigns a task to each of the
// three cores:
//
//	bus          the polling loop (not used by the interrupt strategy)
//	audio        the render pump
//	bookkeeping  edge watcher, memory flush, activity LED, statistics,
//	             preferences reload and the quit key
//
// Preferences are taken from the environment. The gpio.device and
// psram.device preferences can be set to "sim" to run the card without
// hardware.
package hardware
