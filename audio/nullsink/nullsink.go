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

// Package nullsink discards audio at the rate it would be played.
package nullsink

import (
	"sync/atomic"

	"github.com/pigus/pigus/performance/limiter"
)

// Sink implements the audio.Sink interface.
type Sink struct {
	lim    *limiter.Limiter
	frames atomic.Uint64
}

// NewSink is the preferred method of initialisation for the Sink type. A rate
// of zero means that Write() never blocks.
func NewSink(rate int, frames int) *Sink {
	batches := 0
	if rate > 0 && frames > 0 {
		batches = rate / frames
	}
	return &Sink{
		lim: limiter.NewLimiter(batches),
	}
}

// Write implements the audio.Sink interface.
func (s *Sink) Write(buffer []int16) error {
	s.lim.Wait()
	s.frames.Add(uint64(len(buffer) / 2))
	return nil
}

// Frames returns the number of frames discarded.
func (s *Sink) Frames() uint64 {
	return s.frames.Load()
}

// Close implements the audio.Sink interface.
func (s *Sink) Close() error {
	s.lim.Stop()
	return nil
}
