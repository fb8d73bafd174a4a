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

//go:build sdl

package sdlsink

import (
	"encoding/binary"
	"time"

	"github.com/pigus/pigus/curated"
	"github.com/pigus/pigus/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// SDLError is the pattern for all errors from the package.
const SDLError = "sdlsink: %v"

// Sink implements the audio.Sink interface.
type Sink struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// Write() blocks while more than this number of bytes is queued
	maxQueued uint32

	bytes []byte
}

// NewSink is the preferred method of initialisation for the Sink type.
func NewSink(rate int, frames int) (*Sink, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(rate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 2,
		Samples:  uint16(frames),
	}

	s := &Sink{
		bytes: make([]byte, frames*2*2),
	}

	var err error
	s.id, err = sdl.OpenAudioDevice("", false, spec, &s.spec, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, curated.Errorf(SDLError, err)
	}

	s.maxQueued = uint32(len(s.bytes) * 2)

	sdl.PauseAudioDevice(s.id, false)

	logger.Logf(logger.Allow, "sdlsink", "playing at %dHz (%d samples)", s.spec.Freq, s.spec.Samples)

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

	for sdl.GetQueuedAudioSize(s.id) > s.maxQueued {
		time.Sleep(time.Millisecond)
	}

	if err := sdl.QueueAudio(s.id, b); err != nil {
		return curated.Errorf(SDLError, err)
	}
	return nil
}

// Close implements the audio.Sink interface.
func (s *Sink) Close() error {
	sdl.CloseAudioDevice(s.id)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
	return nil
}
