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

package audio

import "math"

// Tone is a Source of a sine wave on both channels. It is used to test a sink
// without a device.
type Tone struct {
	step  float64
	phase float64
	level float64
}

// NewTone is the preferred method of initialisation for the Tone type.
func NewTone(rate int, freq float64) *Tone {
	return &Tone{
		step:  2 * math.Pi * freq / float64(rate),
		level: math.MaxInt16 / 4,
	}
}

// RenderSound implements the Source interface.
func (t *Tone) RenderSound(buffer []int16) {
	for i := 0; i+1 < len(buffer); i += Channels {
		v := int16(math.Sin(t.phase) * t.level)
		buffer[i] = v
		buffer[i+1] = v
		t.phase += t.step
		if t.phase >= 2*math.Pi {
			t.phase -= 2 * math.Pi
		}
	}
}
