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

// Package audio moves rendered sound from the card to an output.
//
// The Pump asks a Source (the card's device) for a fixed sized batch of
// interleaved 16 bit stereo samples and passes it to a Sink. Writing to the
// sink is the only operation in the card that is allowed to block. The
// sink's rate of consumption therefore sets the pace of rendering.
//
// Sink implementations are in the sub-packages. The sinks package chooses
// one by name.
package audio
