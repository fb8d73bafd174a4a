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

// Package wavsink writes audio to a WAV file as it is rendered. Writes are
// paced to the sample rate so that the card renders at the same speed as it
// would with a real audio device.
package wavsink

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pigus/pigus/curated"
	"github.com/pigus/pigus/logger"
	"github.com/pigus/pigus/performance/limiter"
)

// WavError is the pattern for all errors from the package.
const WavError = "wavsink: %v"

const bitDepth = 16

// Sink implements the audio.Sink interface.
type Sink struct {
	filename string
	f        *os.File
	enc      *wav.Encoder
	buf      *audio.IntBuffer
	lim      *limiter.Limiter
}

// NewSink is the preferred method of initialisation for the Sink type. A
// paced value of false means that Write() returns as soon as the data is
// encoded.
func NewSink(filename string, rate int, frames int, paced bool) (*Sink, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf(WavError, err)
	}

	batches := 0
	if paced && frames > 0 {
		batches = rate / frames
	}

	s := &Sink{
		filename: filename,
		f:        f,
		enc:      wav.NewEncoder(f, rate, bitDepth, 2, 1),
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: 2,
				SampleRate:  rate,
			},
			SourceBitDepth: bitDepth,
		},
		lim: limiter.NewLimiter(batches),
	}

	logger.Logf(logger.Allow, "wavsink", "writing audio to %s", filename)

	return s, nil
}

// Write implements the audio.Sink interface.
func (s *Sink) Write(buffer []int16) error {
	s.lim.Wait()

	if cap(s.buf.Data) < len(buffer) {
		s.buf.Data = make([]int, len(buffer))
	}
	s.buf.Data = s.buf.Data[:len(buffer)]
	for i, v := range buffer {
		s.buf.Data[i] = int(v)
	}

	if err := s.enc.Write(s.buf); err != nil {
		return curated.Errorf(WavError, err)
	}
	return nil
}

// Close implements the audio.Sink interface. The WAV header is completed
// and the file closed.
func (s *Sink) Close() (rerr error) {
	s.lim.Stop()

	defer func() {
		err := s.f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(WavError, err)
		}
	}()

	if err := s.enc.Close(); err != nil {
		return curated.Errorf(WavError, err)
	}

	return nil
}
