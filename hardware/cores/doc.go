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

// Package cores runs the card's long-running tasks, one per processor core.
//
// There are three cores: the bus core, which samples and dispatches bus
// cycles; the audio core, which renders sound and is the only task allowed
// to block; and the bookkeeping core, which does everything else. Each task
// runs in its own goroutine, locked to an operating system thread and
// optionally pinned to a CPU.
//
// Tasks communicate with small integer signals. There is one channel for
// each ordered pair of cores and sending never blocks. If the channel is
// full the signal is dropped and the drop is counted. Any data that the
// receiver will need must be published before the signal is sent.
//
// Shutdown is a one-shot directive. Tasks should check
// Context.ShuttingDown() or select on Context.Done() and return promptly.
package cores
