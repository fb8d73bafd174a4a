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

// Package otosink plays audio through the system's audio device.
//
// Rendered batches are written to a pipe which the oto player reads from.
// The pipe blocks the writer until the player has taken the data and so the
// player's own buffering sets the pace of the audio core.
package otosink

import (
	"encoding/binary"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/pigus/pigus/curated"
	"github.com/pigus/pigus/logger"
)

// OtoError is the pattern for all errors from the package.
const OtoError = "otosink: %v"

// Sink implements the audio.Sink interface.
type Sink struct {
	ctx    *oto.Context
	player *oto.Player

	pr *io.PipeReader
	pw *io.PipeWriter

	bytes []byte
}

// NewSink is the preferred method of initialisation for the Sink type. The
// device buffer is two batches long.
func NewSink(rate int, frames int) (*Sink, error) {
	op := &oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   2 * time.Duration(frames) * time.Second / time.Duration(rate),
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf(OtoError, err)
	}
	<-ready

	s := &Sink{
		ctx:   ctx,
		bytes: make([]byte, frames*2*2),
	}
	s.pr, s.pw = io.Pipe()

	s.player = ctx.NewPlayer(s.pr)
	s.player.Play()

	logger.Logf(logger.Allow, "otosink", "playing at %dHz (buffer %v)", rate, op.BufferSize)

	return s, nil
}

// Write implements the audio.Sink interface.
func (s *Sink) Write(buffer []int16) error {
	if len(s.bytes) < len(buffer)*2 {
		s.bytes = make([]byte, len(buffer)*2)
	}
	b := s.bytes[:len(buffer)*2]
	for i, v := range buffer {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(v))
	}

	if _, err := s.pw.Write(b); err != nil {
		return curated.Errorf(OtoError, err)
	}
	return nil
}

// Close implements the audio.Sink interface. A Write() that is blocked will
// return with an error.
func (s *Sink) Close() error {
	s.pw.Close()
	if err := s.player.Close(); err != nil {
		return curated.Errorf(OtoError, err)
	}
	return nil
}
