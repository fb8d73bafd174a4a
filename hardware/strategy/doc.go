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

// Package strategy decides how bus cycles reach the dispatcher.
//
// There are three strategies. Interrupt delivers every strobe edge as an
// event from the GPIO edge source. Polling runs a busy loop on the bus core
// that samples the lines and classifies the edges itself. Hybrid takes
// write strobes as events and polls for read strobes.
//
// The strategy is chosen when the program is built, with the build tags
// "interrupt" or "hybrid". Without either tag the strategy is Polling. The
// chosen strategy is the constant Selected and it never changes while the
// program is running.
//
// Wire() turns a strategy into the tasks that the card runs.
package strategy
