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

// Package dispatch turns bus cycle edges into calls to the emulated device.
//
// Writes are passed to the device once, at the beginning of the write cycle.
// Reads are answered at the beginning of the read cycle by placing the
// device's value on the data bus. The data bus is released at the end of the
// read cycle, at the beginning of the next read cycle if the end was missed,
// or when it has been held for longer than the maximum hold time. Offsets
// that are not in the port map are ignored.
//
// A Dispatcher is owned by whichever context handles bus edges (the bus core
// or the edge watcher) and has no locking. Statistics are kept with atomic
// counters and can be read from any core.
package dispatch
